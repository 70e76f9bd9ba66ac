package handler

import "github.com/sweetcrumb/menu-system/internal/core/domain"

func toMenuItemResponse(item *domain.MenuItem) *menuItemResponse {
	return &menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Image:       item.Image,
		Stock:       item.Stock,
		StockStatus: string(item.StockStatus),
		CreatedAt:   item.CreatedAt.UTC(),
		UpdatedAt:   item.UpdatedAt.UTC(),
	}
}

func toMenuItemResponses(items []*domain.MenuItem) []menuItemResponse {
	out := make([]menuItemResponse, len(items))
	for i, item := range items {
		out[i] = *toMenuItemResponse(item)
	}
	return out
}
