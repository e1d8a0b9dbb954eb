package commands

import (
	"errors"

	"burgerpos/internal/pkg/guard"
)

var ErrAddItemToOrderCommandIsNotConstructed = errors.New(
	"AddItemToOrderCommand must be created via NewAddItemToOrderCommand constructor",
)

// AddItemToOrderCommand puts one configured menu item on the current order,
// starting an order first if none is being built.
//
// Example:
//
//	cmd, err := NewAddItemToOrderCommand(ItemConfiguration{
//	    MenuItemName: "Classic Double Smash",
//	    Add:          []string{"bacon"},
//	    Remove:       []string{"onion"},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid item: %w", err)
//	}
//
//	handler := NewAddItemToOrderCommandHandler(uowFactory, controller, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddItemToOrderCommand struct { //nolint:recvcheck //using for validation
	configuration ItemConfiguration

	guard guard.ConstructorGuard
}

// NewAddItemToOrderCommand requires a menu item name. Ingredient names are checked
// by the handler against the cloned item.
func NewAddItemToOrderCommand(configuration ItemConfiguration) (AddItemToOrderCommand, error) {
	cmd := AddItemToOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setConfiguration(configuration); err != nil {
		return AddItemToOrderCommand{}, err
	}

	return cmd, nil
}

func (c AddItemToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToOrderCommandIsNotConstructed)
}

func (c AddItemToOrderCommand) Configuration() ItemConfiguration {
	return c.configuration
}

func (c *AddItemToOrderCommand) setConfiguration(configuration ItemConfiguration) error {
	if err := configuration.validate(); err != nil {
		return err
	}

	c.configuration = configuration
	return nil
}
