package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecomarket/catalog-api/internal/core/domain"
	"github.com/ecomarket/catalog-api/internal/core/ports"
)

type recordingAuditService struct {
	mu     sync.Mutex
	events []ports.AuditEventInput
	done   chan struct{}
	want   int
}

func newRecordingAuditService(want int) *recordingAuditService {
	return &recordingAuditService{done: make(chan struct{}), want: want}
}

func (s *recordingAuditService) Record(_ context.Context, in ports.AuditEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, in)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *recordingAuditService) ListByActor(context.Context, string, int64) ([]domain.AuditEntry, error) {
	return nil, nil
}

func (s *recordingAuditService) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = e.Action
	}
	return out
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := newRecordingAuditService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())
	d.Start(ctx)

	for _, action := range []string{"auth.login", "product.create", "product.delete"} {
		d.Enqueue(ports.AuditEventInput{Actor: "alice", Action: action, Timestamp: time.Now().UTC()})
	}

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("events not delivered, got %v", svc.actions())
	}
}

func TestDispatcher_SameActorSameWorker(t *testing.T) {
	d := NewDispatcher(4, newRecordingAuditService(0), zerolog.Nop())

	first := d.shardIndex("alice")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("alice"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}

func TestDispatcher_OrderPreservedPerActor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := newRecordingAuditService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	d.Enqueue(ports.AuditEventInput{Actor: "alice", Action: "first"})
	d.Enqueue(ports.AuditEventInput{Actor: "alice", Action: "second"})
	d.Enqueue(ports.AuditEventInput{Actor: "alice", Action: "third"})

	select {
	case <-svc.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("events not delivered")
	}

	got := svc.actions()
	if got[0] != "first" || got[1] != "second" || got[2] != "third" {
		t.Fatalf("order not preserved: %v", got)
	}
}
