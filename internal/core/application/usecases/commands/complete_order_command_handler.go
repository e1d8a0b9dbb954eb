package commands

import (
	"context"

	"burgerpos/internal/core/ports"
)

// CompleteOrderCommandHandler fulfils a submitted order. IDs that are not on the
// board yield an errs.ErrObjectNotFound error and leave the board unchanged.
type CompleteOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	orders     OrderLifecycle
}

func NewCompleteOrderCommandHandler(uowFactory ports.UnitOfWorkFactory, orders OrderLifecycle) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory, orders: orders}
}

func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err := h.orders.Complete(cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
