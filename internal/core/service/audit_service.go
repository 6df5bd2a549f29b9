package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ecomarket/catalog-api/internal/core/domain"
	"github.com/ecomarket/catalog-api/internal/core/ports"
)

const defaultAuditListLimit = 50

// auditService persists audit events delivered by the dispatcher workers
// and serves the admin audit view.
type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

func (s *auditService) Record(ctx context.Context, in ports.AuditEventInput) error {
	entry := &domain.AuditEntry{
		Actor:     in.Actor,
		Action:    in.Action,
		Target:    in.Target,
		Timestamp: in.Timestamp,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record audit event: %w", err)
	}
	return nil
}

func (s *auditService) ListByActor(ctx context.Context, actor string, limit int64) ([]domain.AuditEntry, error) {
	if limit <= 0 {
		limit = defaultAuditListLimit
	}
	return s.repo.ListByActor(ctx, actor, limit)
}
