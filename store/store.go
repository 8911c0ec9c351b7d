// Package store provides the durable key-value layer behind the catalog,
// cart, order and account stores. Each named collection holds one JSON
// list; a collection is written back whole after every mutation, and there
// is no cross-collection transaction.
package store

// Collection names. Every store owns exactly one of these.
const (
	CollectionProducts = "products"
	CollectionCart     = "cart"
	CollectionOrders   = "orders"
	CollectionUsers    = "users"
)

// Store is a collection-keyed durable store. Load decodes the collection
// into out (a pointer to a slice) and leaves out untouched when the
// collection has never been written. Malformed stored data is an error:
// callers are expected to fail fast rather than silently drop records.
type Store interface {
	Load(collection string, out any) error
	Save(collection string, records any) error
}
