package ports

import (
	"context"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// ProductRepository defines the interface for product persistence.
// "Active" here means is_active and stock > 0: sold-out products drop out
// of listings without being deleted.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
	ListActiveByCategoryIDs(ctx context.Context, categoryIDs []int64) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	// Deactivate soft-deletes the product.
	Deactivate(ctx context.Context, id int64) error
}
