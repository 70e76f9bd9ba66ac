package ports

import (
	"context"

	"github.com/sweetcrumb/menu-system/internal/core/domain"
)

// MenuItemUpdate carries a partial update. Nil fields are left untouched.
// StockStatus is always set by the service whenever Stock is non-nil.
type MenuItemUpdate struct {
	Name        *string
	Description *string
	Price       *string
	Image       *string
	Stock       *int
	StockStatus *domain.Availability
}

// MenuRepository defines persistence operations for menu items.
type MenuRepository interface {
	// Create inserts a new item and returns it with the store-assigned ID
	// and timestamps populated.
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	// List returns all items ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.MenuItem, error)
	FindByID(ctx context.Context, id string) (*domain.MenuItem, error)
	// Update applies the non-nil fields and returns the updated document.
	// Returns domain.ErrMenuItemNotFound when id does not match a document.
	Update(ctx context.Context, id string, update MenuItemUpdate) (*domain.MenuItem, error)
	// Delete removes the document and returns its last snapshot.
	Delete(ctx context.Context, id string) (*domain.MenuItem, error)
}
