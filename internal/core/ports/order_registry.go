// Package ports defines the contracts between the application core and its adapters.
package ports

import (
	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/order"
)

// OrderRegistry is the identity map of live orders. For a given ID every caller
// receives the same *order.Order, so mutations through one handle are visible
// through all others. Entries live until Remove is called.
type OrderRegistry interface {
	// GetOrCreate returns the order registered under id, creating and registering
	// an empty Open order on first reference.
	GetOrCreate(id kernel.UUID) (*order.Order, error)

	// Get returns the registered order or an errs.ErrObjectNotFound error.
	Get(id kernel.UUID) (*order.Order, error)

	// Remove forgets id. A later GetOrCreate(id) yields a fresh, empty order.
	// Unknown IDs are ignored.
	Remove(id kernel.UUID)

	Len() int
}
