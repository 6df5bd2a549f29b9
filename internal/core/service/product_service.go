package service

import (
	"context"
	"strconv"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/ecomarket/catalog-api/internal/api/metrics"
	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/domain"
	"github.com/ecomarket/catalog-api/internal/core/ports"
)

const (
	cacheKeyAllProducts    = "products:all"
	cacheKeyCategoryPrefix = "products:category:"
)

// ProductService implements the product catalog. Creation requires a
// supplier or admin caller; updates and deletes additionally require the
// caller to own the product (or be admin). Reads are public and served
// through the listing cache.
type ProductService struct {
	products   ports.ProductRepository
	categories ports.CategoryRepository
	cache      ports.ProductCache
	audit      ports.AuditSink
	log        zerolog.Logger
}

func NewProductService(
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	cache ports.ProductCache,
	audit ports.AuditSink,
	log zerolog.Logger,
) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		cache:      cache,
		audit:      audit,
		log:        log,
	}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.cached(ctx, cacheKeyAllProducts, func() ([]domain.Product, error) {
		return s.products.ListActive(ctx)
	})
}

// ListByCategorySlug lists active products in the category plus its direct
// subcategories.
func (s *ProductService) ListByCategorySlug(ctx context.Context, categorySlug string) ([]domain.Product, error) {
	return s.cached(ctx, cacheKeyCategoryPrefix+categorySlug, func() ([]domain.Product, error) {
		category, err := s.categories.FindBySlug(ctx, categorySlug)
		if err != nil {
			return nil, err
		}

		children, err := s.categories.ListChildren(ctx, category.ID)
		if err != nil {
			return nil, err
		}

		ids := make([]int64, 0, len(children)+1)
		ids = append(ids, category.ID)
		for _, child := range children {
			ids = append(ids, child.ID)
		}
		return s.products.ListActiveByCategoryIDs(ctx, ids)
	})
}

func (s *ProductService) GetBySlug(ctx context.Context, productSlug string) (*domain.Product, error) {
	product, err := s.products.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if !product.IsActive || product.Stock <= 0 {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) Create(ctx context.Context, caller *auth.SessionClaims, in ports.ProductInput) (*domain.Product, error) {
	if !auth.IsSupplierOrAdmin(caller) {
		return nil, domain.ErrForbidden
	}

	product := &domain.Product{
		Name:        in.Name,
		Slug:        slug.Make(in.Name),
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
		Rating:      0,
		CategoryID:  in.CategoryID,
		SupplierID:  caller.UserID,
		IsActive:    true,
	}

	created, err := s.products.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.recordMutation(ctx, caller, created.ID, "product.create")
	return created, nil
}

func (s *ProductService) Update(ctx context.Context, caller *auth.SessionClaims, productSlug string, in ports.ProductInput) (*domain.Product, error) {
	product, err := s.products.FindBySlug(ctx, productSlug)
	if err != nil {
		return nil, err
	}
	if !auth.IsSupplierOrAdmin(caller) || !auth.IsOwnerOrAdmin(caller, product.SupplierID) {
		return nil, domain.ErrForbidden
	}

	product.Name = in.Name
	product.Slug = slug.Make(in.Name)
	product.Description = in.Description
	product.Price = in.Price
	product.ImageURL = in.ImageURL
	product.Stock = in.Stock
	product.CategoryID = in.CategoryID

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.recordMutation(ctx, caller, product.ID, "product.update")
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, caller *auth.SessionClaims, id int64) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.IsSupplierOrAdmin(caller) || !auth.IsOwnerOrAdmin(caller, product.SupplierID) {
		return domain.ErrForbidden
	}

	if err := s.products.Deactivate(ctx, id); err != nil {
		return err
	}

	s.recordMutation(ctx, caller, id, "product.delete")
	return nil
}

// cached serves a listing from the cache when possible, falling back to
// load on a miss or a cache error.
func (s *ProductService) cached(ctx context.Context, key string, load func() ([]domain.Product, error)) ([]domain.Product, error) {
	if hit, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("listing cache read failed")
	} else if hit != nil {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return hit, nil
	}
	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()

	products, err := load()
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, products); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("listing cache write failed")
	}
	return products, nil
}

func (s *ProductService) recordMutation(ctx context.Context, caller *auth.SessionClaims, id int64, action string) {
	if err := s.cache.Purge(ctx); err != nil {
		s.log.Warn().Err(err).Msg("listing cache purge failed")
	}
	s.audit.Enqueue(ports.AuditEventInput{
		Actor:     caller.Subject,
		Action:    action,
		Target:    strconv.FormatInt(id, 10),
		Timestamp: time.Now().UTC(),
	})
}
