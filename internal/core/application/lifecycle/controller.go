// Package lifecycle coordinates orders from the till to the kitchen board.
//
// The Controller owns the "current order" slot (the one Open order being built)
// and the active-order list (Submitted orders, oldest first). Orders themselves
// live in a ports.OrderRegistry and are always reached through it.
//
//	StartOrder / AddItemToCurrent   -> Open (current)
//	Confirm                         -> Submitted (appended to the active list)
//	Complete                        -> Completed (removed from the list and the registry)
//
// The Controller does no locking; run it inside a ports.UnitOfWork when it is
// shared between goroutines.
package lifecycle

import (
	"errors"
	"log/slog"
	"slices"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/core/ports"
	"burgerpos/internal/pkg/errs"
)

// ErrNoCurrentOrder is returned when an operation needs an Open order and none is being built.
var ErrNoCurrentOrder = errors.New("no current order")

type Controller struct {
	registry ports.OrderRegistry
	current  *order.Order
	active   []kernel.UUID
	logger   *slog.Logger
}

func NewController(registry ports.OrderRegistry, logger *slog.Logger) *Controller {
	return &Controller{
		registry: registry,
		active:   []kernel.UUID{},
		logger:   logger.With("component", "order_lifecycle"),
	}
}

// StartOrder returns the current order, registering a new one under a fresh ID
// if none is open.
func (c *Controller) StartOrder() (*order.Order, error) {
	if c.current != nil {
		return c.current, nil
	}

	o, err := c.registry.GetOrCreate(kernel.NewUUID())
	if err != nil {
		return nil, err
	}
	c.current = o
	c.logger.Info("order started", "order_id", o.ID())
	return o, nil
}

// AddItemToCurrent appends item to the current order, starting one if needed, and
// returns the regrouped contents for the building panel.
func (c *Controller) AddItemToCurrent(item *order.Item) ([]order.Group, error) {
	o, err := c.StartOrder()
	if err != nil {
		return nil, err
	}
	if err = o.AddItem(item); err != nil {
		return nil, err
	}
	return o.GroupByConfiguration(), nil
}

// RemoveItemFromCurrent drops the first item configured like item.
func (c *Controller) RemoveItemFromCurrent(item *order.Item) ([]order.Group, error) {
	if c.current == nil {
		return nil, ErrNoCurrentOrder
	}
	if err := c.current.RemoveItem(item); err != nil {
		return nil, err
	}
	return c.current.GroupByConfiguration(), nil
}

// Confirm submits the current order, attaching customerName when given, appends
// it to the active list and empties the current slot.
func (c *Controller) Confirm(customerName string) (*order.Order, error) {
	if c.current == nil {
		return nil, ErrNoCurrentOrder
	}

	confirmed := c.current
	if err := confirmed.Submit(customerName); err != nil {
		return nil, err
	}

	c.active = append(c.active, confirmed.ID())
	c.current = nil
	c.logger.Info("order confirmed",
		"order_id", confirmed.ID(),
		"customer", confirmed.CustomerName(),
		"items", confirmed.Len(),
		"total", confirmed.TotalPrice().String(),
	)
	return confirmed, nil
}

// Complete fulfils a submitted order: it leaves the active list and the registry.
// IDs not on the active list yield errs.ErrObjectNotFound and change nothing.
func (c *Controller) Complete(id kernel.UUID) error {
	idx := slices.IndexFunc(c.active, id.IsEqual)
	if idx < 0 {
		return errs.NewObjectNotFoundError("orderID", id.String())
	}

	o, err := c.registry.Get(id)
	if err != nil {
		return err
	}
	if err = o.Complete(); err != nil {
		return err
	}

	c.active = slices.Delete(c.active, idx, idx+1)
	c.registry.Remove(id)
	c.logger.Info("order completed", "order_id", id)
	return nil
}

// DiscardCurrent abandons the order being built and deregisters it.
func (c *Controller) DiscardCurrent() error {
	if c.current == nil {
		return ErrNoCurrentOrder
	}

	id := c.current.ID()
	c.registry.Remove(id)
	c.current = nil
	c.logger.Info("order discarded", "order_id", id)
	return nil
}

// CurrentOrder returns the Open order being built, if any.
func (c *Controller) CurrentOrder() (*order.Order, bool) {
	return c.current, c.current != nil
}

// ActiveOrderIDs lists submitted orders oldest first.
func (c *Controller) ActiveOrderIDs() []kernel.UUID {
	return slices.Clone(c.active)
}

// ActiveOrders resolves ActiveOrderIDs through the registry.
func (c *Controller) ActiveOrders() ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(c.active))
	for _, id := range c.active {
		o, err := c.registry.Get(id)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
