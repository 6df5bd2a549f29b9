package ports

import (
	"context"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	ListActive(ctx context.Context) ([]domain.Category, error)
	ListChildren(ctx context.Context, parentID int64) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	// Deactivate soft-deletes the category.
	Deactivate(ctx context.Context, id int64) error
}
