package commands

import (
	"context"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/ports"
)

// ConfirmOrderCommandHandler moves the current order onto the kitchen board.
//
// Example:
//
//	handler := NewConfirmOrderCommandHandler(uowFactory, controller)
//	id, err := handler.Handle(ctx, NewConfirmOrderCommand("Alex"))
//	if errors.Is(err, lifecycle.ErrNoCurrentOrder) {
//	    // nothing was being built
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	orders     OrderLifecycle
}

func NewConfirmOrderCommandHandler(uowFactory ports.UnitOfWorkFactory, orders OrderLifecycle) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{uowFactory: uowFactory, orders: orders}
}

// Handle returns the ID of the submitted order.
func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) (kernel.UUID, error) {
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

	confirmed, err := h.orders.Confirm(cmd.CustomerName())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return confirmed.ID(), nil
}
