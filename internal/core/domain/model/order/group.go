package order

import "burgerpos/internal/core/domain/model/kernel"

// Group is one distinct item configuration within an order. Item is the first
// occurrence and stands in for every member, since members are structurally equal.
type Group struct {
	Item  *Item
	Count int
}

// Subtotal is the unit price times Count.
func (g Group) Subtotal() kernel.Money {
	return g.Item.Price().Times(g.Count)
}
