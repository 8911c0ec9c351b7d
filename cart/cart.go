// Package cart owns the in-progress order lines. Lines are keyed by owner
// (account email) so one store serves every session, and each mutation is
// persisted before it returns.
package cart

import (
	"sync"

	"github.com/Ricardo-1112/shuiba-order/models"
	"github.com/Ricardo-1112/shuiba-order/pkg/logger"
	"github.com/Ricardo-1112/shuiba-order/store"
)

// Engine holds the cart lines for all owners. Invariant: at most one line
// per (owner, product id).
type Engine struct {
	mu     sync.RWMutex
	store  store.Store
	logger *logger.Logger
	lines  []models.CartLine
}

// New loads the persisted cart collection.
func New(st store.Store, log *logger.Logger) (*Engine, error) {
	e := &Engine{
		store:  st,
		logger: log.WithComponent("cart"),
	}
	if err := st.Load(store.CollectionCart, &e.lines); err != nil {
		return nil, err
	}
	return e, nil
}

// Add merges the product into the owner's cart: an existing line gains one
// unit in place, a new product appends a quantity-1 line at the end.
func (e *Engine) Add(owner string, p models.Product) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].Owner == owner && e.lines[i].ID == p.ID {
			e.lines[i].Qty++
			return e.store.Save(store.CollectionCart, e.lines)
		}
	}
	e.lines = append(e.lines, models.CartLine{Owner: owner, Product: p, Qty: 1})
	return e.store.Save(store.CollectionCart, e.lines)
}

// Remove drops the owner's line for the product. Unknown ids are a no-op.
func (e *Engine) Remove(owner, productID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.lines[:0]
	for _, l := range e.lines {
		if l.Owner == owner && l.ID == productID {
			continue
		}
		kept = append(kept, l)
	}
	e.lines = kept
	return e.store.Save(store.CollectionCart, e.lines)
}

// ChangeQty adjusts a line's quantity by delta, clamping at 1. Driving the
// quantity below 1 never removes the line; that takes an explicit Remove.
func (e *Engine) ChangeQty(owner, productID string, delta int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.lines {
		if e.lines[i].Owner == owner && e.lines[i].ID == productID {
			qty := e.lines[i].Qty + delta
			if qty < 1 {
				qty = 1
			}
			e.lines[i].Qty = qty
			return e.store.Save(store.CollectionCart, e.lines)
		}
	}
	return nil
}

// Lines returns a copy of the owner's cart in insertion order.
func (e *Engine) Lines(owner string) []models.CartLine {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []models.CartLine
	for _, l := range e.lines {
		if l.Owner == owner {
			out = append(out, l)
		}
	}
	return out
}

// Total sums price×quantity over the owner's lines.
func (e *Engine) Total(owner string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var total float64
	for _, l := range e.lines {
		if l.Owner == owner {
			total += l.Subtotal()
		}
	}
	return total
}

// Clear empties the owner's cart. Called after a successful submission and
// on logout.
func (e *Engine) Clear(owner string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	kept := e.lines[:0]
	for _, l := range e.lines {
		if l.Owner != owner {
			kept = append(kept, l)
		}
	}
	e.lines = kept
	return e.store.Save(store.CollectionCart, e.lines)
}
