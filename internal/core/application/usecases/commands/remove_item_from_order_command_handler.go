package commands

import (
	"context"

	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/core/ports"
)

type RemoveItemFromOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	orders     OrderLifecycle
	menu       ports.MenuCatalog
}

func NewRemoveItemFromOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	orders OrderLifecycle,
	menu ports.MenuCatalog,
) RemoveItemFromOrderCommandHandler {
	return RemoveItemFromOrderCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		menu:       menu,
	}
}

// Handle rebuilds the described configuration and removes the first matching item.
// No match yields an errs.ErrObjectNotFound error.
func (h *RemoveItemFromOrderCommandHandler) Handle(ctx context.Context, cmd RemoveItemFromOrderCommand) ([]order.Group, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	configuration := cmd.Configuration()
	template, err := h.menu.Find(configuration.MenuItemName)
	if err != nil {
		return nil, err
	}

	item, err := configuration.build(template)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	groups, err := h.orders.RemoveItemFromCurrent(item)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return groups, nil
}
