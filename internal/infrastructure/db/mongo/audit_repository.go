package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ecomarket/catalog-api/internal/core/domain"
)

const auditCollection = "audit_events"

type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	doc := bson.M{
		"actor":       entry.Actor,
		"action":      entry.Action,
		"timestamp":   entry.Timestamp.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if entry.Target != "" {
		doc["target"] = entry.Target
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

// ListByActor returns the actor's most recent entries, newest first.
func (r *AuditRepository) ListByActor(ctx context.Context, actor string, limit int64) ([]domain.AuditEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cur, err := r.coll.Find(ctx, bson.M{"actor": actor}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer cur.Close(ctx)

	var entries []domain.AuditEntry
	for cur.Next(ctx) {
		var doc struct {
			Actor     string    `bson:"actor"`
			Action    string    `bson:"action"`
			Target    string    `bson:"target,omitempty"`
			Timestamp time.Time `bson:"timestamp"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit entry: %w", err)
		}
		entries = append(entries, domain.AuditEntry{
			Actor:     doc.Actor,
			Action:    doc.Action,
			Target:    doc.Target,
			Timestamp: doc.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
