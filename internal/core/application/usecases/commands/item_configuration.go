package commands

import (
	"strings"

	"burgerpos/internal/core/domain/model/menu"
	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/pkg/errs"
)

// ItemConfiguration names a menu item and the changes a customer asked for.
type ItemConfiguration struct {
	MenuItemName string
	Add          []string
	Remove       []string
}

func (c ItemConfiguration) validate() error {
	if strings.TrimSpace(c.MenuItemName) == "" {
		return errs.NewValueIsRequiredError("menuItemName")
	}
	return nil
}

// build clones the template and applies removals before additions, so removing
// and re-adding the same ingredient leaves it listed under both.
func (c ItemConfiguration) build(template menu.MenuItem) (*order.Item, error) {
	item, err := order.Clone(template)
	if err != nil {
		return nil, err
	}

	for _, ingredient := range c.Remove {
		if err = item.RemoveIngredient(ingredient); err != nil {
			return nil, err
		}
	}
	for _, ingredient := range c.Add {
		if err = item.AddIngredient(ingredient); err != nil {
			return nil, err
		}
	}
	return item, nil
}
