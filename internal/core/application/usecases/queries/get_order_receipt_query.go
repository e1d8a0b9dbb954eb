package queries

import (
	"errors"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/model/order"
	"burgerpos/internal/pkg/guard"
)

var ErrGetOrderReceiptQueryIsNotConstructed = errors.New(
	"GetOrderReceiptQuery must be created via NewGetOrderReceiptQuery constructor",
)

// GetOrderReceiptQuery renders the plain-text details of any registered order.
// Completed orders are deregistered and no longer have a receipt.
type GetOrderReceiptQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderReceiptQuery(orderID kernel.UUID) (GetOrderReceiptQuery, error) {
	query := GetOrderReceiptQuery{guard: guard.NewConstructorGuard()}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderReceiptQuery{}, err
	}

	return query, nil
}

func (q GetOrderReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderReceiptQueryIsNotConstructed)
}

func (q GetOrderReceiptQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderReceiptQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

type GetOrderReceiptQueryResponse struct {
	ID           kernel.UUID  `json:"id"`
	CustomerName string       `json:"customerName,omitempty"`
	Status       order.Status `json:"status"`
	Details      string       `json:"details"`
	Total        kernel.Money `json:"total"`
}
