package order

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/pkg/errs"
	"burgerpos/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via Clone")

	// ErrIngredientAlreadyPresent: the ingredient is in the recipe or already added.
	ErrIngredientAlreadyPresent = errors.New("ingredient already present")

	// ErrIngredientNotPresent: only ingredients currently in the recipe can be removed.
	ErrIngredientNotPresent = errors.New("ingredient not present")

	ErrIngredientAlreadyRemoved = errors.New("ingredient already removed")

	// ErrItemIsSealed: the item already belongs to an order.
	ErrItemIsSealed = errors.New("item is sealed in an order")

	ErrIngredientHasControlChars = errors.New("ingredient name contains control characters")
)

// Template is anything an Item can be cloned from: a menu.MenuItem or another Item.
type Template interface {
	Name() string
	Price() kernel.Money
	Ingredients() []string
}

// Item is one customizable burger. It starts as an exact copy of its template's
// recipe and records every ingredient added or removed afterwards.
//
// Invariants:
//   - ingredients is sorted ascending and never shares storage with the template
//   - added and removed hold no duplicates and keep insertion order
//   - no added ingredient is also in ingredients
//   - once sealed (appended to an Order) the item no longer accepts modifications
type Item struct {
	name        string
	price       kernel.Money
	ingredients []string
	added       []string
	removed     []string
	sealed      bool

	guard guard.ConstructorGuard
}

// Clone produces a fresh, unmodified Item from template. The result has its own
// ingredient list and empty modification sets, whatever state template is in.
//
// Example:
//
//	burger, _ := order.Clone(classicSmash)
//	_ = burger.RemoveIngredient("lettuce")
//	_ = burger.AddIngredient("bacon")
//	burger.DisplayIngredients() // "cheese, onion, patty, ADD bacon"
func Clone(template Template) (*Item, error) {
	if template == nil {
		return nil, errs.NewValueIsRequiredError("template")
	}
	if v, ok := template.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	name := template.Name()
	if name == "" {
		return nil, errs.NewValueIsRequiredError("template name")
	}

	ingredients := slices.Clone(template.Ingredients())
	slices.Sort(ingredients)

	return &Item{
		name:        name,
		price:       template.Price(),
		ingredients: slices.Compact(ingredients),
		added:       []string{},
		removed:     []string{},
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name is the name of the menu template the item was cloned from.
func (i *Item) Name() string {
	return i.name
}

// Price is the template price at clone time. Modifications are free.
func (i *Item) Price() kernel.Money {
	return i.price
}

// Ingredients returns a copy of the current, sorted recipe.
func (i *Item) Ingredients() []string {
	return slices.Clone(i.ingredients)
}

// Modifications returns copies of the added and removed ingredients, each in the
// order they were applied.
func (i *Item) Modifications() (added, removed []string) {
	return slices.Clone(i.added), slices.Clone(i.removed)
}

func (i *Item) IsSealed() bool {
	return i.sealed
}

// AddIngredient puts an extra ingredient on the item. Ingredients already in the
// recipe or already added are rejected with errs.ErrModificationIsInvalid.
func (i *Item) AddIngredient(name string) error {
	name, err := i.prepareModification(name)
	if err != nil {
		return err
	}
	if slices.Contains(i.ingredients, name) || slices.Contains(i.added, name) {
		return errs.NewModificationIsInvalidErrorWithCause("ingredient", name, ErrIngredientAlreadyPresent)
	}

	i.added = append(i.added, name)
	return nil
}

// RemoveIngredient takes an ingredient out of the recipe. Only ingredients
// currently in the recipe can be removed, and each one only once.
func (i *Item) RemoveIngredient(name string) error {
	name, err := i.prepareModification(name)
	if err != nil {
		return err
	}
	if slices.Contains(i.removed, name) {
		return errs.NewModificationIsInvalidErrorWithCause("ingredient", name, ErrIngredientAlreadyRemoved)
	}
	idx, found := slices.BinarySearch(i.ingredients, name)
	if !found {
		return errs.NewModificationIsInvalidErrorWithCause("ingredient", name, ErrIngredientNotPresent)
	}

	i.ingredients = slices.Delete(i.ingredients, idx, idx+1)
	i.removed = append(i.removed, name)
	return nil
}

// DisplayIngredients renders the recipe for receipts and tickets: the sorted
// ingredients (any still listed as removed shown as "NO x"), then "ADD x" for every
// added ingredient in the order it was added, separated by ", ".
func (i *Item) DisplayIngredients() string {
	parts := make([]string, 0, len(i.ingredients)+len(i.added))
	for _, ingredient := range i.ingredients {
		if slices.Contains(i.removed, ingredient) {
			parts = append(parts, "NO "+ingredient)
			continue
		}
		parts = append(parts, ingredient)
	}
	for _, ingredient := range i.added {
		parts = append(parts, "ADD "+ingredient)
	}
	return strings.Join(parts, ", ")
}

// Key is the grouping key of the item's configuration. Both modification sets are
// sorted before encoding, so the order modifications were applied in does not
// matter. Every name is quoted, so no two configurations share a key.
func (i *Item) Key() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(i.name))
	for _, section := range [][]string{i.ingredients, i.sortedAdded(), i.sortedRemoved()} {
		b.WriteByte('|')
		for _, name := range section {
			b.WriteString(strconv.Quote(name))
		}
	}
	return b.String()
}

// Equal reports structural equality: same template name, ingredients and
// modification sets.
func (i *Item) Equal(other *Item) bool {
	if i == nil || other == nil {
		return i == other
	}
	return i.name == other.name &&
		slices.Equal(i.ingredients, other.ingredients) &&
		slices.Equal(i.sortedAdded(), other.sortedAdded()) &&
		slices.Equal(i.sortedRemoved(), other.sortedRemoved())
}

func (i *Item) sortedAdded() []string {
	return slices.Sorted(slices.Values(i.added))
}

func (i *Item) sortedRemoved() []string {
	return slices.Sorted(slices.Values(i.removed))
}

func (i *Item) seal() {
	i.sealed = true
}

func (i *Item) prepareModification(name string) (string, error) {
	if err := i.Validate(); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errs.NewValueIsRequiredError("ingredient")
	}
	if strings.ContainsFunc(name, unicode.IsControl) {
		return "", errs.NewValueIsInvalidErrorWithCause("ingredient", ErrIngredientHasControlChars)
	}
	if i.sealed {
		return "", errs.NewModificationIsInvalidErrorWithCause("ingredient", name, ErrItemIsSealed)
	}
	return name, nil
}
