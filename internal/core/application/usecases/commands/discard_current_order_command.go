package commands

import (
	"errors"

	"burgerpos/internal/pkg/guard"
)

var ErrDiscardCurrentOrderCommandIsNotConstructed = errors.New(
	"DiscardCurrentOrderCommand must be created via NewDiscardCurrentOrderCommand constructor",
)

// DiscardCurrentOrderCommand abandons the order being built.
type DiscardCurrentOrderCommand struct {
	guard guard.ConstructorGuard
}

func NewDiscardCurrentOrderCommand() DiscardCurrentOrderCommand {
	return DiscardCurrentOrderCommand{guard: guard.NewConstructorGuard()}
}

func (c DiscardCurrentOrderCommand) Validate() error {
	return c.guard.Validate(ErrDiscardCurrentOrderCommandIsNotConstructed)
}
