package handler

import "time"

// messageResponse is the envelope returned by all menu write operations.
// GET /api/menu returns the raw array instead; that asymmetry is part of the
// public contract.
type messageResponse struct {
	Message string            `json:"message"`
	Menu    *menuItemResponse `json:"menu,omitempty"`
}

// errorResponse is the error envelope. Detail carries the underlying cause
// on internal errors only.
type errorResponse struct {
	Message string `json:"message"`
	Detail  string `json:"error,omitempty"`
}

type menuItemResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	StockStatus string    `json:"stockStatus"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// updateStockRequest is the JSON body of PATCH /api/menu/:id/stock.
// Stock is a pointer so an explicit 0 survives the required check.
type updateStockRequest struct {
	Stock *int `json:"stock" validate:"required,min=0"`
}
