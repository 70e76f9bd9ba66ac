package ports

import (
	"context"
	"io"

	"github.com/sweetcrumb/menu-system/internal/core/domain"
)

// ImageUpload carries the uploaded file handed from the transport layer to
// the service. Content is consumed exactly once.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// CreateMenuItemInput carries all data needed to create a menu item.
// Name, Description, Price and Image are required.
type CreateMenuItemInput struct {
	Name        string
	Description string
	Price       string
	Stock       int
	Image       *ImageUpload
}

// UpdateMenuItemInput carries a partial edit. Nil fields are not changed.
type UpdateMenuItemInput struct {
	Name        *string
	Description *string
	Price       *string
	Stock       *int
	Image       *ImageUpload
}

// MenuService defines use-case operations for the menu.
type MenuService interface {
	Create(ctx context.Context, input CreateMenuItemInput) (*domain.MenuItem, error)
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Update(ctx context.Context, id string, input UpdateMenuItemInput) (*domain.MenuItem, error)
	UpdateStock(ctx context.Context, id string, stock int) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) (*domain.MenuItem, error)
}
