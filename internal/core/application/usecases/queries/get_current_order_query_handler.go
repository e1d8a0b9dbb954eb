package queries

import (
	"context"

	"burgerpos/internal/core/application/lifecycle"
	"burgerpos/internal/core/domain/services"
	"burgerpos/internal/core/ports"
)

type GetCurrentOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	board      OrderBoard
	summarizer services.OrderSummarizer
}

func NewGetCurrentOrderQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	board OrderBoard,
	summarizer services.OrderSummarizer,
) GetCurrentOrderQueryHandler {
	return GetCurrentOrderQueryHandler{
		uowFactory: uowFactory,
		board:      board,
		summarizer: summarizer,
	}
}

// Handle returns lifecycle.ErrNoCurrentOrder when no order is being built.
func (h GetCurrentOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentOrderQuery,
) (services.OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return services.OrderSummary{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.OrderSummary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	current, ok := h.board.CurrentOrder()
	if !ok {
		return services.OrderSummary{}, lifecycle.ErrNoCurrentOrder
	}

	return h.summarizer.Summarize(current)
}
