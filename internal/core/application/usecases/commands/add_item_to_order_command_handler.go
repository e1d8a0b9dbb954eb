package commands

import (
	"context"

	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/core/ports"
)

// AddItemToOrderCommandHandler clones the named template, applies the requested
// removals and additions, and appends the result to the current order. A rejected
// modification leaves the order untouched.
type AddItemToOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	orders     OrderLifecycle
	menu       ports.MenuCatalog
}

func NewAddItemToOrderCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	orders OrderLifecycle,
	menu ports.MenuCatalog,
) AddItemToOrderCommandHandler {
	return AddItemToOrderCommandHandler{
		uowFactory: uowFactory,
		orders:     orders,
		menu:       menu,
	}
}

// Handle returns the current order's groups as they stood when the unit committed,
// so callers never need a second read to render them.
func (h *AddItemToOrderCommandHandler) Handle(ctx context.Context, cmd AddItemToOrderCommand) ([]order.Group, error) {
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

	groups, err := h.orders.AddItemToCurrent(item)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return groups, nil
}
