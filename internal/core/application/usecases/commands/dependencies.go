// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler validates its command, then runs against the lifecycle controller
// inside a unit of work.
package commands

import (
	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/order"
)

// OrderLifecycle is the subset of lifecycle.Controller the command handlers drive.
type OrderLifecycle interface {
	StartOrder() (*order.Order, error)
	AddItemToCurrent(item *order.Item) ([]order.Group, error)
	RemoveItemFromCurrent(item *order.Item) ([]order.Group, error)
	Confirm(customerName string) (*order.Order, error)
	Complete(id kernel.UUID) error
	DiscardCurrent() error
}
