package queries

import (
	"errors"

	"burgerpos/internal/core/domain/services"
	"burgerpos/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists submitted orders for the kitchen board, oldest first.
//
// Example:
//
//	handler := NewGetActiveOrdersQueryHandler(uowFactory, controller, summarizer, 6)
//	board, err := handler.Handle(ctx, NewGetActiveOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range board.Orders[:min(board.Slots, len(board.Orders))] {
//	    fmt.Println(o.ID, o.Total)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse carries every active order. Slots is how many the
// board shows at once; paging is left to the client.
type GetActiveOrdersQueryResponse struct {
	Slots  int                     `json:"slots"`
	Orders []services.OrderSummary `json:"orders"`
}
