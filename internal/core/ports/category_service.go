package ports

import (
	"context"

	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// CategoryInput carries the mutable fields of a category. The slug is
// always derived from the name, never supplied.
type CategoryInput struct {
	Name     string
	ParentID *int64
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, caller *auth.SessionClaims, in CategoryInput) (*domain.Category, error)
	Update(ctx context.Context, caller *auth.SessionClaims, id int64, in CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, caller *auth.SessionClaims, id int64) error
}
