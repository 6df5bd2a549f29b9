package ports

import (
	"context"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// ProductCache is a read-through cache for product listings. Get returns
// (nil, nil) on a miss. Cache failures are soft: callers log and fall back
// to the repository.
type ProductCache interface {
	Get(ctx context.Context, key string) ([]domain.Product, error)
	Set(ctx context.Context, key string, products []domain.Product) error
	// Purge drops every cached listing. Called after any catalog mutation.
	Purge(ctx context.Context) error
}
