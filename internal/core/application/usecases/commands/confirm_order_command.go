package commands

import (
	"errors"
	"strings"

	"burgerpos/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand submits the current order to the kitchen. The customer name
// is optional; blank names leave the order anonymous.
type ConfirmOrderCommand struct {
	customerName string

	guard guard.ConstructorGuard
}

func NewConfirmOrderCommand(customerName string) ConfirmOrderCommand {
	return ConfirmOrderCommand{
		customerName: strings.TrimSpace(customerName),
		guard:        guard.NewConstructorGuard(),
	}
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) CustomerName() string {
	return c.customerName
}
