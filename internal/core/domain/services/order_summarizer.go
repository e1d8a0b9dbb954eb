package services

import (
	"slices"
	"time"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/menu"
	"burgerpos/internal/core/domain/model/order"
)

// MenuLookup resolves a template by name. *menu.Catalog satisfies it.
type MenuLookup interface {
	Find(name string) (menu.MenuItem, error)
}

// Mark flags an ingredient line relative to the catalog recipe.
type Mark int

const (
	Unmarked Mark = iota
	Removed
	Added
)

func (m Mark) String() string {
	switch m {
	case Removed:
		return "removed"
	case Added:
		return "added"
	default:
		return ""
	}
}

func (m Mark) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

type IngredientLine struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark,omitempty"`
}

// GroupSummary describes one distinct configuration in an order.
type GroupSummary struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Count       int              `json:"count"`
	UnitPrice   kernel.Money     `json:"unitPrice"`
	Subtotal    kernel.Money     `json:"subtotal"`
	Ingredients []IngredientLine `json:"ingredients"`
}

type OrderSummary struct {
	ID           kernel.UUID    `json:"id"`
	CustomerName string         `json:"customerName,omitempty"`
	Status       order.Status   `json:"status"`
	SubmittedAt  time.Time      `json:"submittedAt,omitzero"`
	Total        kernel.Money   `json:"total"`
	Groups       []GroupSummary `json:"groups"`
}

type OrderSummarizer struct {
	menu MenuLookup
}

func NewOrderSummarizer(lookup MenuLookup) OrderSummarizer {
	return OrderSummarizer{menu: lookup}
}

// Summarize groups o by configuration and marks each group's ingredients against
// the catalog recipe: catalog ingredients missing from the item are Removed, extra
// ingredients are appended as Added in the order they were added, and the rest are
// Unmarked. Items cloned from another modified Item are marked the same way, since
// the diff is taken against the item's current recipe and not only its own
// modification sets. A group whose template is no longer in the catalog yields
// errs.ErrObjectNotFound.
func (s OrderSummarizer) Summarize(o *order.Order) (OrderSummary, error) {
	if err := o.Validate(); err != nil {
		return OrderSummary{}, err
	}

	groups, err := s.SummarizeGroups(o.GroupByConfiguration())
	if err != nil {
		return OrderSummary{}, err
	}

	return OrderSummary{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Status:       o.Status(),
		SubmittedAt:  o.SubmittedAt(),
		Total:        o.TotalPrice(),
		Groups:       groups,
	}, nil
}

// SummarizeGroups builds GroupSummary values for already grouped items.
func (s OrderSummarizer) SummarizeGroups(groups []order.Group) ([]GroupSummary, error) {
	summaries := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		template, err := s.menu.Find(g.Item.Name())
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, GroupSummary{
			Name:        g.Item.Name(),
			Description: template.Description(),
			Count:       g.Count,
			UnitPrice:   g.Item.Price(),
			Subtotal:    g.Subtotal(),
			Ingredients: markIngredients(template.Ingredients(), g.Item),
		})
	}
	return summaries, nil
}

func markIngredients(canonical []string, item *order.Item) []IngredientLine {
	current := item.Ingredients()
	added, removed := item.Modifications()

	lines := make([]IngredientLine, 0, len(canonical)+len(added))
	for _, ingredient := range canonical {
		mark := Unmarked
		if slices.Contains(removed, ingredient) || !slices.Contains(current, ingredient) {
			mark = Removed
		}
		lines = append(lines, IngredientLine{Name: ingredient, Mark: mark})
	}
	// inherited extras come first, in recipe order
	for _, ingredient := range current {
		if !slices.Contains(canonical, ingredient) {
			lines = append(lines, IngredientLine{Name: ingredient, Mark: Added})
		}
	}
	for _, ingredient := range added {
		lines = append(lines, IngredientLine{Name: ingredient, Mark: Added})
	}
	return lines
}
