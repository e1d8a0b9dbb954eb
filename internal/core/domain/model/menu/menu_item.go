package menu

import (
	"errors"
	"slices"
	"strings"
	"unicode"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/pkg/errs"
	"burgerpos/internal/pkg/guard"
)

var (
	ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

	// ErrNameHasControlChars: names end up in receipts and grouping keys.
	ErrNameHasControlChars = errors.New("name contains control characters")
)

// MenuItem is a catalog template. Its fields are private and its accessors return
// copies, so a MenuItem cannot change once built.
type MenuItem struct {
	name        string
	description string
	price       kernel.Money
	ingredients []string

	guard guard.ConstructorGuard
}

// NewMenuItem validates and builds a template. Ingredient names are trimmed,
// de-duplicated and sorted ascending; blank names are rejected.
//
// Example:
//
//	item, err := menu.NewMenuItem(
//	    "Classic Double Smash",
//	    "Two patties, American cheese, lettuce, tomato",
//	    kernel.MustMoney("9.99"),
//	    []string{"patty", "american cheese", "lettuce", "tomato"},
//	)
func NewMenuItem(name, description string, price kernel.Money, ingredients []string) (MenuItem, error) {
	item := MenuItem{
		description: strings.TrimSpace(description),
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setIngredients(ingredients),
	); err != nil {
		return MenuItem{}, err
	}

	return item, nil
}

func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m MenuItem) Name() string {
	return m.name
}

func (m MenuItem) Description() string {
	return m.description
}

func (m MenuItem) Price() kernel.Money {
	return m.price
}

// Ingredients returns a fresh copy of the canonical ingredient list.
func (m MenuItem) Ingredients() []string {
	return slices.Clone(m.ingredients)
}

// HasIngredient reports whether name is part of the canonical recipe.
func (m MenuItem) HasIngredient(name string) bool {
	_, found := slices.BinarySearch(m.ingredients, name)
	return found
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return errs.NewValueIsInvalidErrorWithCause("name", ErrNameHasControlChars)
	}
	m.name = name
	return nil
}

func (m *MenuItem) setIngredients(ingredients []string) error {
	canonical := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ingredient = strings.TrimSpace(ingredient)
		if ingredient == "" {
			return errs.NewValueIsRequiredError("ingredient")
		}
		if strings.ContainsFunc(ingredient, unicode.IsControl) {
			return errs.NewValueIsInvalidErrorWithCause("ingredient", ErrNameHasControlChars)
		}
		canonical = append(canonical, ingredient)
	}
	slices.Sort(canonical)
	m.ingredients = slices.Compact(canonical)
	return nil
}
