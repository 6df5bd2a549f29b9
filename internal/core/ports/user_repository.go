package ports

import (
	"context"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence. Each call
// is a single atomic store operation; concurrent flag toggles on the same
// user rely on the store applying one whole update at a time.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// UpdateFlags sets the named boolean flags on the user in one write.
	UpdateFlags(ctx context.Context, id int64, fields map[string]bool) error
}
