package commands

import (
	"errors"

	"burgerpos/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand opens a new order at the till. It is idempotent: while an
// order is being built, the handler returns that order's ID.
type StartOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewStartOrderCommand() StartOrderCommand {
	return StartOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}
