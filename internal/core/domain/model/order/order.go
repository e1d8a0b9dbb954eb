package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOrderIsEmpty          = errors.New("order has no items")
)

// Order is the aggregate root for one customer's purchase. Items keep insertion
// order and are never de-duplicated on write; identical configurations are only
// grouped when read through GroupByConfiguration.
//
// Orders are shared by reference: the registry hands every caller the same *Order
// for a given ID, so there is no copy constructor.
type Order struct {
	id           kernel.UUID
	customerName string
	items        []*Item
	status       Status
	createdAt    time.Time
	submittedAt  time.Time

	isConstructed bool
}

// NewOrder creates an empty Open order.
func NewOrder(id kernel.UUID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Order{
		id:            id,
		items:         []*Item{},
		status:        Open,
		createdAt:     time.Now(),
		isConstructed: true,
	}, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName is empty until a name is given on Submit.
func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// SubmittedAt is zero while the order is Open.
func (o *Order) SubmittedAt() time.Time {
	return o.submittedAt
}

// Items returns the items in insertion order. The slice is a copy; the items are
// sealed and therefore read-only.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Len() int {
	return len(o.items)
}

// AddItem appends item and seals it. The order must be Open and the item must
// not already belong to an order.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateEdit(); err != nil {
		return err
	}
	if item.IsSealed() {
		return errs.NewModificationIsInvalidErrorWithCause("item", item.Name(), ErrItemIsSealed)
	}

	item.seal()
	o.items = append(o.items, item)
	return nil
}

// RemoveItem drops the first item structurally equal to item.
func (o *Order) RemoveItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := o.status.ValidateEdit(); err != nil {
		return err
	}

	for idx, candidate := range o.items {
		if candidate.Equal(item) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundErrorWithCause("item", item.Name(),
		fmt.Errorf("no %q with this configuration in order %s", item.Name(), o.id))
}

// TotalPrice sums item prices. Ingredient modifications are not charged.
func (o *Order) TotalPrice() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		total = total.Add(item.Price())
	}
	return total
}

// GroupByConfiguration partitions the items by structural equality. Groups are
// ordered by the first occurrence of each configuration and their counts sum to Len.
func (o *Order) GroupByConfiguration() []Group {
	groups := make([]Group, 0, len(o.items))
	index := make(map[string]int, len(o.items))

	for _, item := range o.items {
		key := item.Key()
		if idx, seen := index[key]; seen {
			groups[idx].Count++
			continue
		}
		index[key] = len(groups)
		groups = append(groups, Group{Item: item, Count: 1})
	}
	return groups
}

// OrderDetails renders one "name: ingredients" line per item, ungrouped, for
// plain-text receipts.
func (o *Order) OrderDetails() string {
	lines := make([]string, 0, len(o.items))
	for _, item := range o.items {
		lines = append(lines, item.Name()+": "+item.DisplayIngredients())
	}
	return strings.Join(lines, "\n")
}

// Submit moves the order to the active board. A non-blank customerName is attached
// to this order. Empty orders cannot be submitted.
func (o *Order) Submit(customerName string) error {
	if len(o.items) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("items", ErrOrderIsEmpty)
	}

	newStatus, err := o.status.Submit()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.submittedAt = time.Now()
	if name := strings.TrimSpace(customerName); name != "" {
		o.customerName = name
	}
	return nil
}

// Complete marks a Submitted order as fulfilled.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
