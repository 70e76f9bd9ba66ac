package domain

import (
	"errors"
	"time"
)

// Availability is the derived stock label shown on the public menu.
type Availability string

const (
	AvailabilityAvailable Availability = "Available"
	AvailabilitySoldOut   Availability = "Sold Out"
)

var ErrMenuItemNotFound = errors.New("menu item not found")
var ErrMissingFields = errors.New("all fields are required")
var ErrImageUpload = errors.New("image upload failed")
var ErrForbidden = errors.New("access forbidden")

// AvailabilityFor derives the stock label from a stock count. It is the
// single source of the derivation and must be invoked on every write path;
// a persisted StockStatus read without recomputation may be stale.
func AvailabilityFor(stock int) Availability {
	if stock > 0 {
		return AvailabilityAvailable
	}
	return AvailabilitySoldOut
}

// MenuItem is the core aggregate stored in the menu_items collection.
type MenuItem struct {
	ID          string       `json:"_id" bson:"_id,omitempty"`
	Name        string       `json:"name" bson:"name"`
	Description string       `json:"description" bson:"description"`
	Price       string       `json:"price" bson:"price"`
	Image       string       `json:"image" bson:"image"`
	Stock       int          `json:"stock" bson:"stock"`
	StockStatus Availability `json:"stockStatus" bson:"stock_status"`
	CreatedAt   time.Time    `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" bson:"updated_at"`
}
