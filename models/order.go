package models

import "time"

type OrderStatus string

const (
	// OrderStatusAwaitingPickup is the state every order starts in.
	OrderStatusAwaitingPickup OrderStatus = "待取餐"
	// OrderStatusFulfilled means the customer collected the order.
	OrderStatusFulfilled OrderStatus = "已取餐"
	// OrderStatusCancelled means the order was cancelled before pickup.
	OrderStatusCancelled OrderStatus = "已取消"
)

// OrderItem is a cart line frozen at submission time. It carries no owner:
// the order itself records whose it is.
type OrderItem struct {
	Product
	Qty int `json:"qty"`
}

// Order is an immutable record of a submitted cart. Items and Total are
// computed from the cart snapshot, so catalog edits after submission never
// rewrite history.
type Order struct {
	ID         string      `json:"id"`
	UserEmail  string      `json:"userEmail"`
	Items      []OrderItem `json:"items"`
	Total      float64     `json:"total"`
	PickupSlot string      `json:"pickupSlot"`
	CreatedAt  time.Time   `json:"createdAt"`
	Status     OrderStatus `json:"status"`
}
