package http

import (
	"burgerpos/internal/core/domain/model/kernel"
	"burgerpos/internal/core/domain/services"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ItemRequest describes a configured burger in add and remove requests.
type ItemRequest struct {
	MenuItem string   `json:"menuItem"`
	Add      []string `json:"add,omitempty"`
	Remove   []string `json:"remove,omitempty"`
}

// CurrentItems is the answer to add and remove: the order being built, regrouped.
type CurrentItems struct {
	Total  kernel.Money            `json:"total"`
	Groups []services.GroupSummary `json:"groups"`
}

type ConfirmRequest struct {
	CustomerName string `json:"customerName"`
}

type OrderCreated struct {
	ID string `json:"id"`
}

type Health struct {
	Status string `json:"status"`
}
