package commands

import (
	"context"

	"burgerpos/internal/core/ports"
)

type DiscardCurrentOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	orders     OrderLifecycle
}

func NewDiscardCurrentOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	orders OrderLifecycle,
) DiscardCurrentOrderCommandHandler {
	return DiscardCurrentOrderCommandHandler{uowFactory: uowFactory, orders: orders}
}

func (h *DiscardCurrentOrderCommandHandler) Handle(ctx context.Context, cmd DiscardCurrentOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.orders.DiscardCurrent(); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
