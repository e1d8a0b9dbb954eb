package queries

import (
	"context"

	"burgerpos/internal/core/domain/services"
	"burgerpos/internal/core/ports"
)

type GetActiveOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	board      OrderBoard
	summarizer services.OrderSummarizer
	slots      int
}

func NewGetActiveOrdersQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	board OrderBoard,
	summarizer services.OrderSummarizer,
	slots int,
) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{
		uowFactory: uowFactory,
		board:      board,
		summarizer: summarizer,
		slots:      slots,
	}
}

func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) (GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := h.board.ActiveOrders()
	if err != nil {
		return GetActiveOrdersQueryResponse{}, err
	}

	summaries := make([]services.OrderSummary, 0, len(orders))
	for _, o := range orders {
		summary, summarizeErr := h.summarizer.Summarize(o)
		if summarizeErr != nil {
			return GetActiveOrdersQueryResponse{}, summarizeErr
		}
		summaries = append(summaries, summary)
	}

	return GetActiveOrdersQueryResponse{Slots: h.slots, Orders: summaries}, nil
}
