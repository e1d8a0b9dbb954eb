// Package orderregistry keeps live orders in process memory.
package orderregistry

import (
	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/pkg/errs"
)

// Registry implements ports.OrderRegistry with a plain map. It performs no locking;
// callers run inside a ports.UnitOfWork.
type Registry struct {
	orders map[kernel.UUID]*order.Order
}

func New() *Registry {
	return &Registry{orders: make(map[kernel.UUID]*order.Order)}
}

// GetOrCreate returns the tracked order for id, creating an empty one on first use.
func (r *Registry) GetOrCreate(id kernel.UUID) (*order.Order, error) {
	if existing, ok := r.orders[id]; ok {
		return existing, nil
	}

	created, err := order.NewOrder(id)
	if err != nil {
		return nil, err
	}
	r.orders[id] = created
	return created, nil
}

func (r *Registry) Get(id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	existing, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}
	return existing, nil
}

func (r *Registry) Remove(id kernel.UUID) {
	delete(r.orders, id)
}

func (r *Registry) Len() int {
	return len(r.orders)
}
