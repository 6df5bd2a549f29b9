package ports

import (
	"context"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// AuditRepository persists audit entries and serves the admin audit view.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	ListByActor(ctx context.Context, actor string, limit int64) ([]domain.AuditEntry, error)
}
