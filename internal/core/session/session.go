// Package session owns the current-identity pointer: logged out, or logged
// in as exactly one user. Impersonation replaces the identity wholesale.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
)

// State is the persisted auth snapshot: the current user (or null) and the
// authenticated flag.
type State struct {
	User            *domain.User `json:"user"`
	IsAuthenticated bool         `json:"is_authenticated"`
}

// Manager holds the session state and mirrors every transition to the auth
// snapshot. The zero state is LoggedOut.
type Manager struct {
	mu        sync.Mutex
	state     State
	snapshots ports.SnapshotStore
	log       zerolog.Logger
}

func NewManager(snapshots ports.SnapshotStore, log zerolog.Logger) *Manager {
	return &Manager{snapshots: snapshots, log: log}
}

// Restore loads the persisted auth snapshot, if any. Read failures are
// logged and leave the session logged out.
func (m *Manager) Restore(ctx context.Context) {
	raw, err := m.snapshots.Load(ctx, ports.SnapshotAuth)
	if err != nil {
		if err != domain.ErrSnapshotMissing {
			m.log.Warn().Err(err).Msg("auth snapshot read failed, starting logged out")
		}
		return
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		m.log.Warn().Err(err).Msg("auth snapshot decode failed, starting logged out")
		return
	}
	m.mu.Lock()
	m.state = st
	m.mu.Unlock()
}

// Login sets the current identity and persists the snapshot.
func (m *Manager) Login(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := *user
	m.state = State{User: &u, IsAuthenticated: true}
	return m.persist(ctx)
}

// Logout clears the identity and deletes the persisted snapshot entirely.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = State{}
	if err := m.snapshots.Delete(ctx, ports.SnapshotAuth); err != nil {
		m.log.Error().Err(err).Msg("auth snapshot delete failed")
		return err
	}
	return nil
}

// Impersonate replaces the identity with the target while staying
// authenticated. The prior identity is not recorded; there is no built-in way
// back.
func (m *Manager) Impersonate(ctx context.Context, target *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsAuthenticated {
		return domain.ErrNotAuthenticated
	}
	u := *target
	m.state = State{User: &u, IsAuthenticated: true}
	return m.persist(ctx)
}

// Current returns the current identity and whether the session is
// authenticated.
func (m *Manager) Current() (*domain.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsAuthenticated || m.state.User == nil {
		return nil, false
	}
	u := *m.state.User
	return &u, true
}

func (m *Manager) persist(ctx context.Context) error {
	raw, err := json.Marshal(m.state)
	if err != nil {
		return err
	}
	if err := m.snapshots.Save(ctx, ports.SnapshotAuth, raw); err != nil {
		m.log.Error().Err(err).Msg("auth snapshot write failed")
		return err
	}
	return nil
}
