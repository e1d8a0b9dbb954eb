package queries

import (
	"context"

	"burgerpos/internal/core/ports"
)

type GetOrderReceiptQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	registry   ports.OrderRegistry
}

func NewGetOrderReceiptQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	registry ports.OrderRegistry,
) GetOrderReceiptQueryHandler {
	return GetOrderReceiptQueryHandler{uowFactory: uowFactory, registry: registry}
}

// Handle looks the order up without creating it; unknown IDs yield an
// errs.ErrObjectNotFound error.
func (h GetOrderReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetOrderReceiptQuery,
) (GetOrderReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := h.registry.Get(query.OrderID())
	if err != nil {
		return GetOrderReceiptQueryResponse{}, err
	}

	return GetOrderReceiptQueryResponse{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Status:       o.Status(),
		Details:      o.OrderDetails(),
		Total:        o.TotalPrice(),
	}, nil
}
