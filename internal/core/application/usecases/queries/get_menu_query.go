package queries

import (
	"errors"

	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery lists the burgers on sale, in menu order.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

type GetMenuQueryResponse struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Price       kernel.Money `json:"price"`
	Ingredients []string     `json:"ingredients"`
}
