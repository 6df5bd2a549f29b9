package service

import (
	"context"
	"strconv"
	"time"

	"github.com/gosimple/slug"
	"github.com/rs/zerolog"

	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/domain"
	"github.com/ecomarket/catalog-api/internal/core/ports"
)

// CategoryService implements catalog category management. Every mutation
// is admin-gated; reads are public.
type CategoryService struct {
	repo  ports.CategoryRepository
	cache ports.ProductCache
	audit ports.AuditSink
	log   zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, cache ports.ProductCache, audit ports.AuditSink, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, cache: cache, audit: audit, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListActive(ctx)
}

func (s *CategoryService) Create(ctx context.Context, caller *auth.SessionClaims, in ports.CategoryInput) (*domain.Category, error) {
	if !auth.IsAdmin(caller) {
		return nil, domain.ErrForbidden
	}

	category := &domain.Category{
		Name:     in.Name,
		Slug:     slug.Make(in.Name),
		ParentID: in.ParentID,
		IsActive: true,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	s.recordMutation(ctx, caller, created.ID, "category.create")
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, caller *auth.SessionClaims, id int64, in ports.CategoryInput) (*domain.Category, error) {
	if !auth.IsAdmin(caller) {
		return nil, domain.ErrForbidden
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = in.Name
	category.Slug = slug.Make(in.Name)
	category.ParentID = in.ParentID

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	s.recordMutation(ctx, caller, id, "category.update")
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, caller *auth.SessionClaims, id int64) error {
	if !auth.IsAdmin(caller) {
		return domain.ErrForbidden
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.recordMutation(ctx, caller, id, "category.delete")
	return nil
}

// recordMutation audits the change and drops the product listing cache:
// category changes move products between listings.
func (s *CategoryService) recordMutation(ctx context.Context, caller *auth.SessionClaims, id int64, action string) {
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
