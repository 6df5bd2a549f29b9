package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecomarket/catalog-api/internal/core/domain"
	"github.com/ecomarket/catalog-api/internal/core/ports"
)

func categoryInput(name string, parentID *int64) ports.CategoryInput {
	return ports.CategoryInput{Name: name, ParentID: parentID}
}

type stubCategoryRepo struct {
	categories map[int64]*domain.Category
	nextID     int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[int64]*domain.Category)}
}

func (r *stubCategoryRepo) add(c *domain.Category) *domain.Category {
	r.nextID++
	clone := *c
	clone.ID = r.nextID
	r.categories[clone.ID] = &clone
	stored := clone
	return &stored
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	return r.add(category), nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindBySlug(_ context.Context, slug string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Slug == slug {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) ListActive(_ context.Context) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.categories {
		if c.IsActive {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) ListChildren(_ context.Context, parentID int64) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.categories {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	c, ok := r.categories[category.ID]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	*c = *category
	return nil
}

func (r *stubCategoryRepo) Deactivate(_ context.Context, id int64) error {
	c, ok := r.categories[id]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	c.IsActive = false
	return nil
}

// stubCache is an in-memory ports.ProductCache that counts purges.
type stubCache struct {
	entries map[string][]domain.Product
	purges  int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]domain.Product)}
}

func (c *stubCache) Get(_ context.Context, key string) ([]domain.Product, error) {
	products, ok := c.entries[key]
	if !ok {
		return nil, nil
	}
	return products, nil
}

func (c *stubCache) Set(_ context.Context, key string, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}
	c.entries[key] = products
	return nil
}

func (c *stubCache) Purge(_ context.Context) error {
	c.entries = make(map[string][]domain.Product)
	c.purges++
	return nil
}

func testCategoryService(repo *stubCategoryRepo) *CategoryService {
	return NewCategoryService(repo, newStubCache(), &captureSink{}, zerolog.Nop())
}

func TestCategoryService_Create_Admin(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := testCategoryService(repo)

	created, err := svc.Create(context.Background(), adminClaims(), categoryInput("Garden Tools", nil))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Slug != "garden-tools" {
		t.Fatalf("expected slug derived from name, got %q", created.Slug)
	}
	if !created.IsActive {
		t.Fatalf("new categories must start active")
	}
}

func TestCategoryService_Create_NonAdminForbidden(t *testing.T) {
	svc := testCategoryService(newStubCategoryRepo())

	if _, err := svc.Create(context.Background(), customerClaims(), categoryInput("Garden", nil)); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCategoryService_Update_ReslugsAndReparents(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := testCategoryService(repo)
	parent := repo.add(&domain.Category{Name: "Outdoors", Slug: "outdoors", IsActive: true})
	target := repo.add(&domain.Category{Name: "Garden", Slug: "garden", IsActive: true})

	updated, err := svc.Update(context.Background(), adminClaims(), target.ID, categoryInput("Garden Furniture", &parent.ID))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Slug != "garden-furniture" {
		t.Fatalf("expected refreshed slug, got %q", updated.Slug)
	}
	if updated.ParentID == nil || *updated.ParentID != parent.ID {
		t.Fatalf("expected parent %d, got %v", parent.ID, updated.ParentID)
	}
}

func TestCategoryService_Update_Missing(t *testing.T) {
	svc := testCategoryService(newStubCategoryRepo())

	if _, err := svc.Update(context.Background(), adminClaims(), 404, categoryInput("X", nil)); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCategoryService_Delete_SoftDeactivates(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := testCategoryService(repo)
	target := repo.add(&domain.Category{Name: "Garden", Slug: "garden", IsActive: true})

	if err := svc.Delete(context.Background(), adminClaims(), target.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	stored, err := repo.FindByID(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("soft-deleted category must still exist: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("expected category deactivated")
	}
}

func TestCategoryService_Delete_NonAdminForbidden(t *testing.T) {
	repo := newStubCategoryRepo()
	svc := testCategoryService(repo)
	target := repo.add(&domain.Category{Name: "Garden", Slug: "garden", IsActive: true})

	if err := svc.Delete(context.Background(), customerClaims(), target.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCategoryService_Mutation_PurgesCache(t *testing.T) {
	repo := newStubCategoryRepo()
	cache := newStubCache()
	svc := NewCategoryService(repo, cache, &captureSink{}, zerolog.Nop())
	cache.entries["products:all"] = []domain.Product{{ID: 1}}

	if _, err := svc.Create(context.Background(), adminClaims(), categoryInput("Garden", nil)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.purges != 1 {
		t.Fatalf("expected one cache purge, got %d", cache.purges)
	}
	if len(cache.entries) != 0 {
		t.Fatalf("expected cache emptied")
	}
}
