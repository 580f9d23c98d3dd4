package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// collectService records processed events in arrival order.
type collectService struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
	done   chan struct{}
	want   int
}

func newCollectService(want int) *collectService {
	return &collectService{done: make(chan struct{}), want: want}
}

func (s *collectService) Process(_ context.Context, event domain.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *collectService) wait(t *testing.T) []domain.ActivityEvent {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for events")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.ActivityEvent(nil), s.events...)
}

func TestDispatcher_DeliversAllEvents(t *testing.T) {
	svc := newCollectService(3)
	d := NewDispatcher(2, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(domain.ActivityEvent{Entity: "project", EntityID: "p1", Action: "created"})
	d.Record(domain.ActivityEvent{Entity: "task", EntityID: "t1", Action: "created"})
	d.Record(domain.ActivityEvent{Entity: "task", EntityID: "t2", Action: "deleted"})

	events := svc.wait(t)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

// Events for the same entity always land on the same worker, so a single
// worker pool must preserve their order.
func TestDispatcher_PerEntityOrdering(t *testing.T) {
	svc := newCollectService(4)
	d := NewDispatcher(1, svc, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	actions := []string{"created", "updated", "status_changed", "deleted"}
	for _, a := range actions {
		d.Record(domain.ActivityEvent{Entity: "task", EntityID: "t1", Action: a})
	}

	events := svc.wait(t)
	for i, a := range actions {
		if events[i].Action != a {
			t.Errorf("position %d: got %q, want %q", i, events[i].Action, a)
		}
	}
}

func TestDispatcher_ShardIndexDeterministic(t *testing.T) {
	d := NewDispatcher(4, newCollectService(0), zerolog.Nop())

	for _, id := range []string{"p1", "t1", "abc", ""} {
		first := d.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard for %q not deterministic: %d vs %d", id, first, got)
			}
		}
		if first < 0 || first >= 4 {
			t.Errorf("shard for %q out of range: %d", id, first)
		}
	}
}

func TestNewDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newCollectService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
