package commands

import (
	"errors"

	"burgerpos/internal/pkg/guard"
)

var ErrRemoveItemFromOrderCommandIsNotConstructed = errors.New(
	"RemoveItemFromOrderCommand must be created via NewRemoveItemFromOrderCommand constructor",
)

// RemoveItemFromOrderCommand takes one item off the current order. The item is
// identified by its configuration, so any of several identical burgers matches.
type RemoveItemFromOrderCommand struct { //nolint:recvcheck //using for validation
	configuration ItemConfiguration

	guard guard.ConstructorGuard
}

func NewRemoveItemFromOrderCommand(configuration ItemConfiguration) (RemoveItemFromOrderCommand, error) {
	cmd := RemoveItemFromOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setConfiguration(configuration); err != nil {
		return RemoveItemFromOrderCommand{}, err
	}

	return cmd, nil
}

func (c RemoveItemFromOrderCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemFromOrderCommandIsNotConstructed)
}

func (c RemoveItemFromOrderCommand) Configuration() ItemConfiguration {
	return c.configuration
}

func (c *RemoveItemFromOrderCommand) setConfiguration(configuration ItemConfiguration) error {
	if err := configuration.validate(); err != nil {
		return err
	}

	c.configuration = configuration
	return nil
}
