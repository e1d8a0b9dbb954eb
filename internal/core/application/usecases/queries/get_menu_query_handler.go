package queries

import (
	"context"

	"burgerpos/internal/core/ports"
)

// GetMenuQueryHandler reads the catalog directly. The catalog is immutable once
// loaded, so no unit of work is taken.
type GetMenuQueryHandler struct {
	menu ports.MenuCatalog
}

func NewGetMenuQueryHandler(menu ports.MenuCatalog) GetMenuQueryHandler {
	return GetMenuQueryHandler{menu: menu}
}

func (h GetMenuQueryHandler) Handle(_ context.Context, query GetMenuQuery) ([]GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items := h.menu.List()
	response := make([]GetMenuQueryResponse, 0, len(items))
	for _, item := range items {
		response = append(response, GetMenuQueryResponse{
			Name:        item.Name(),
			Description: item.Description(),
			Price:       item.Price(),
			Ingredients: item.Ingredients(),
		})
	}
	return response, nil
}
