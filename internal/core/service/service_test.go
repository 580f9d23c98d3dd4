package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/seed"
	"github.com/PUNEET-EMM/Project-Management/internal/core/store"
)

// ---------------------------------------------------------------------------
// Shared stubs and fixtures for the service tests
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

// stubSnapshots is an in-memory ports.SnapshotStore.
type stubSnapshots struct {
	data map[string][]byte
}

func newStubSnapshots() *stubSnapshots {
	return &stubSnapshots{data: make(map[string][]byte)}
}

func (s *stubSnapshots) Save(_ context.Context, key string, value []byte) error {
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *stubSnapshots) Load(_ context.Context, key string) ([]byte, error) {
	raw, ok := s.data[key]
	if !ok {
		return nil, domain.ErrSnapshotMissing
	}
	return raw, nil
}

func (s *stubSnapshots) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// stubSink records every activity event it receives.
type stubSink struct {
	events []domain.ActivityEvent
}

func (s *stubSink) Record(event domain.ActivityEvent) {
	s.events = append(s.events, event)
}

// seededStore returns a store loaded with the default seed collections:
// users u1..u5, projects p1..p3, tasks t1..t4.
func seededStore(t *testing.T) *store.Store {
	t.Helper()
	st := store.New(newStubSnapshots(), discardLogger)
	st.Load(context.Background(), seed.Collections())
	return st
}

func seededUser(t *testing.T, st *store.Store, id string) *domain.User {
	t.Helper()
	u, ok := st.UserByID(id)
	if !ok {
		t.Fatalf("seed user %q missing", id)
	}
	return &u
}
