// Package orders owns the order history: submission, listing, the pickup
// status state machine and the admin reset.
package orders

import (
	"errors"
	"sync"
	"time"

	"github.com/Ricardo-1112/shuiba-order/ids"
	"github.com/Ricardo-1112/shuiba-order/models"
	"github.com/Ricardo-1112/shuiba-order/pkg/logger"
	"github.com/Ricardo-1112/shuiba-order/store"
)

var (
	ErrNotAuthenticated = errors.New("请先登录")
	ErrEmptyCart        = errors.New("购物车为空")
	ErrInvalidSlot      = errors.New("无效的取餐时间")
	ErrPrivilegeDenied  = errors.New("仅管理员可访问")
	ErrNotFound         = errors.New("订单不存在")
	ErrInvalidStatus    = errors.New("无效的订单状态")
	ErrOrderClosed      = errors.New("订单已完结")
)

// Engine holds the order history, most recent first.
type Engine struct {
	mu     sync.RWMutex
	store  store.Store
	logger *logger.Logger
	slots  []models.PickupSlot
	orders []models.Order
}

// New loads the persisted order list. slots is the fixed set of pickup
// windows submissions are validated against.
func New(st store.Store, log *logger.Logger, slots []models.PickupSlot) (*Engine, error) {
	e := &Engine{
		store:  st,
		logger: log.WithComponent("orders"),
		slots:  slots,
	}
	if err := st.Load(store.CollectionOrders, &e.orders); err != nil {
		return nil, err
	}
	return e, nil
}

// Submit turns the given cart lines into an order. The lines are copied by
// value, so later cart or catalog changes never reach the stored order.
// The caller clears the cart after a successful submission.
func (e *Engine) Submit(sess *models.Session, lines []models.CartLine, slotValue string) (*models.Order, error) {
	if sess == nil {
		return nil, ErrNotAuthenticated
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if !e.validSlot(slotValue) {
		return nil, ErrInvalidSlot
	}

	items := make([]models.OrderItem, len(lines))
	var total float64
	for i, l := range lines {
		items[i] = models.OrderItem{Product: l.Product, Qty: l.Qty}
		total += l.Subtotal()
	}

	order := models.Order{
		ID:         ids.New("order"),
		UserEmail:  sess.Email,
		Items:      items,
		Total:      total,
		PickupSlot: slotValue,
		CreatedAt:  time.Now(),
		Status:     models.OrderStatusAwaitingPickup,
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.orders = append([]models.Order{order}, e.orders...)
	if err := e.store.Save(store.CollectionOrders, e.orders); err != nil {
		e.orders = e.orders[1:]
		return nil, err
	}
	e.logger.Info("Order submitted",
		"order_id", order.ID, "user", order.UserEmail, "total", order.Total, "slot", order.PickupSlot)
	return &order, nil
}

func (e *Engine) validSlot(value string) bool {
	for _, s := range e.slots {
		if s.Value == value {
			return true
		}
	}
	return false
}

// List returns a copy of the full history, most recent first.
func (e *Engine) List() []models.Order {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]models.Order, len(e.orders))
	copy(out, e.orders)
	return out
}

// ListByUser returns the orders placed under the given email.
func (e *Engine) ListByUser(email string) []models.Order {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []models.Order
	for _, o := range e.orders {
		if o.UserEmail == email {
			out = append(out, o)
		}
	}
	return out
}

// ClearAll wipes the whole history. Destructive and admin only; exists for
// counter resets between service periods.
func (e *Engine) ClearAll(actor *models.Session) error {
	if actor == nil || !actor.IsAdmin {
		return ErrPrivilegeDenied
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.orders = nil
	if err := e.store.Save(store.CollectionOrders, []models.Order{}); err != nil {
		return err
	}
	e.logger.Warn("Order history cleared", "by", actor.Email)
	return nil
}

// ParseStatus maps a request string onto a known order status.
func ParseStatus(s string) (models.OrderStatus, error) {
	switch models.OrderStatus(s) {
	case models.OrderStatusAwaitingPickup:
		return models.OrderStatusAwaitingPickup, nil
	case models.OrderStatusFulfilled:
		return models.OrderStatusFulfilled, nil
	case models.OrderStatusCancelled:
		return models.OrderStatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}

// UpdateStatus moves an order through the pickup state machine:
// 待取餐 may become 已取餐 or 已取消; both of those are terminal. Admin only.
func (e *Engine) UpdateStatus(actor *models.Session, orderID string, status models.OrderStatus) error {
	if actor == nil || !actor.IsAdmin {
		return ErrPrivilegeDenied
	}
	if _, err := ParseStatus(string(status)); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.orders {
		if e.orders[i].ID != orderID {
			continue
		}
		if e.orders[i].Status != models.OrderStatusAwaitingPickup {
			return ErrOrderClosed
		}
		if status == models.OrderStatusAwaitingPickup {
			return ErrInvalidStatus
		}
		e.orders[i].Status = status
		if err := e.store.Save(store.CollectionOrders, e.orders); err != nil {
			return err
		}
		e.logger.Info("Order status updated", "order_id", orderID, "status", string(status))
		return nil
	}
	return ErrNotFound
}
