package ports

import (
	"context"

	"github.com/sweetcrumb/menu-system/internal/core/domain"
)

// AuthService implements registration, login and identity resolution.
type AuthService interface {
	// Register creates the user and returns it with a signed bearer token.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns the user with a fresh token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	// Profile resolves the identity behind a token subject.
	Profile(ctx context.Context, userID string) (*domain.User, error)
	// ListUsers returns every registered user. Callers must already be
	// authorized; the service applies no role check of its own.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
