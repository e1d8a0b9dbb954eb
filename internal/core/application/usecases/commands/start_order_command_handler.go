package commands

import (
	"context"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/ports"
)

type StartOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	orders     OrderLifecycle
}

func NewStartOrderCommandHandler(uowFactory ports.UnitOfWorkFactory, orders OrderLifecycle) StartOrderCommandHandler {
	return StartOrderCommandHandler{uowFactory: uowFactory, orders: orders}
}

// Handle returns the ID of the order now being built.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := h.orders.StartOrder()
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}
