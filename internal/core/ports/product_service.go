package ports

import (
	"context"

	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// ProductInput carries the mutable fields of a product. Ownership
// (supplier_id) and rating are never caller-supplied.
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Stock       int
	CategoryID  int64
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategorySlug(ctx context.Context, categorySlug string) ([]domain.Product, error)
	GetBySlug(ctx context.Context, productSlug string) (*domain.Product, error)
	Create(ctx context.Context, caller *auth.SessionClaims, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, caller *auth.SessionClaims, productSlug string, in ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, caller *auth.SessionClaims, id int64) error
}
