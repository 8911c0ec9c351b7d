package models

// CartLine is one product in a cart. Product fields are copied in at add
// time so later catalog edits never change what the customer saw. Owner is
// the account email the line belongs to.
type CartLine struct {
	Owner string `json:"owner"`
	Product
	Qty int `json:"qty"`
}

// Subtotal is the line's contribution to the cart total.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Qty)
}
