package queries

import (
	"errors"

	"burgerpos/internal/pkg/guard"
)

var ErrGetCurrentOrderQueryIsNotConstructed = errors.New(
	"GetCurrentOrderQuery must be created via NewGetCurrentOrderQuery constructor",
)

// GetCurrentOrderQuery fetches the order being built, grouped for the building panel.
type GetCurrentOrderQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCurrentOrderQuery() GetCurrentOrderQuery {
	return GetCurrentOrderQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentOrderQueryIsNotConstructed)
}
