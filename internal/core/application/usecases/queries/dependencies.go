// Package queries contains read operations over the menu and the order board.
// Handlers return plain response structs shaped for the touchscreen front end and
// never change state.
package queries

import (
	"burgerpos/internal/core/domain/model/order"
)

// OrderBoard is the read side of lifecycle.Controller.
type OrderBoard interface {
	CurrentOrder() (*order.Order, bool)
	ActiveOrders() ([]*order.Order, error)
}
