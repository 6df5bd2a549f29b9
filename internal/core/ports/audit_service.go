package ports

import (
	"context"
	"time"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

// AuditEventInput is a single audit event flowing through the dispatcher.
type AuditEventInput struct {
	Actor     string
	Action    string
	Target    string
	Timestamp time.Time
}

// AuditService persists audit events delivered by the dispatcher workers.
type AuditService interface {
	Record(ctx context.Context, in AuditEventInput) error
	ListByActor(ctx context.Context, actor string, limit int64) ([]domain.AuditEntry, error)
}

// AuditSink is the producer side of the audit pipeline. Enqueue never
// blocks request handling and never fails the operation being audited.
type AuditSink interface {
	Enqueue(event AuditEventInput)
}
