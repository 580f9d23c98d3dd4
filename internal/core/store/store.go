// Package store holds the in-memory entity collections and their snapshot
// persistence. Every mutation is complete-or-noop and immediately rewrites
// the whole owning collection under its snapshot key; there is no batching
// and no transactional grouping across collections.
//
// The store performs no permission checks. Callers are expected to
// pre-authorize through the permission package before mutating.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
)

// Seed supplies the default collections used when no snapshot exists.
type Seed struct {
	Users    []domain.User
	Projects []domain.Project
	Tasks    []domain.Task
}

// Store owns the user, project and task collections. One mutex guards all
// three so each mutation plus its snapshot write is atomic with respect to
// concurrent requests.
type Store struct {
	mu        sync.Mutex
	users     []domain.User
	projects  []domain.Project
	tasks     []domain.Task
	snapshots ports.SnapshotStore
	log       zerolog.Logger
	now       func() time.Time
}

func New(snapshots ports.SnapshotStore, log zerolog.Logger) *Store {
	return &Store{
		snapshots: snapshots,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Load restores each collection from its snapshot. A missing or unreadable
// snapshot falls back to the seed for that collection; a read failure is
// logged, never fatal.
func (s *Store) Load(ctx context.Context, seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = loadSlice(ctx, s, ports.SnapshotUsers, seed.Users)
	s.projects = loadSlice(ctx, s, ports.SnapshotProjects, seed.Projects)
	s.tasks = loadSlice(ctx, s, ports.SnapshotTasks, seed.Tasks)
}

func loadSlice[T any](ctx context.Context, s *Store, key string, fallback []T) []T {
	raw, err := s.snapshots.Load(ctx, key)
	if err != nil {
		if err != domain.ErrSnapshotMissing {
			s.log.Warn().Err(err).Str("key", key).Msg("snapshot read failed, using seed data")
		}
		return append([]T(nil), fallback...)
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("snapshot decode failed, using seed data")
		return append([]T(nil), fallback...)
	}
	return out
}

// persist serializes a whole collection under key. Write failures are logged;
// the in-memory mutation stands.
func (s *Store) persist(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("snapshot encode failed")
		return
	}
	if err := s.snapshots.Save(ctx, key, raw); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("snapshot write failed")
	}
}

// --- Projects ---

// AddProject appends a project, assigning a fresh id and createdAt when
// absent, and persists the collection.
func (s *Store) AddProject(ctx context.Context, p domain.Project) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	p.Members = append([]string(nil), p.Members...)
	s.projects = append(s.projects, p)
	s.persist(ctx, ports.SnapshotProjects, s.projects)
	return cloneProject(p)
}

// UpdateProject replaces the matching project in place, keeping CreatedBy and
// CreatedAt from the existing record. Returns false (and writes nothing) when
// the id is unknown.
func (s *Store) UpdateProject(ctx context.Context, p domain.Project) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			p.CreatedBy = s.projects[i].CreatedBy
			p.CreatedAt = s.projects[i].CreatedAt
			p.Members = append([]string(nil), p.Members...)
			s.projects[i] = p
			s.persist(ctx, ports.SnapshotProjects, s.projects)
			return true
		}
	}
	return false
}

// DeleteProject removes the project by id. Returns false when not found.
func (s *Store) DeleteProject(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			s.persist(ctx, ports.SnapshotProjects, s.projects)
			return true
		}
	}
	return false
}

// --- Tasks ---

// AddTask appends a task, assigning a fresh id and timestamps when absent,
// and persists the collection.
func (s *Store) AddTask(ctx context.Context, t domain.Task) domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := s.now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	t.AssignedTo = append([]string(nil), t.AssignedTo...)
	s.tasks = append(s.tasks, t)
	s.persist(ctx, ports.SnapshotTasks, s.tasks)
	return cloneTask(t)
}

// UpdateTask replaces the matching task in place, keeping CreatedBy and
// CreatedAt and stamping UpdatedAt. Returns false when the id is unknown.
func (s *Store) UpdateTask(ctx context.Context, t domain.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			t.CreatedBy = s.tasks[i].CreatedBy
			t.CreatedAt = s.tasks[i].CreatedAt
			t.UpdatedAt = s.now()
			t.AssignedTo = append([]string(nil), t.AssignedTo...)
			s.tasks[i] = t
			s.persist(ctx, ports.SnapshotTasks, s.tasks)
			return true
		}
	}
	return false
}

// DeleteTask removes the task by id. Returns false when not found.
func (s *Store) DeleteTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist(ctx, ports.SnapshotTasks, s.tasks)
			return true
		}
	}
	return false
}

// UpdateTaskStatus mutates only status and updatedAt on the matching task,
// leaving every other field untouched.
func (s *Store) UpdateTaskStatus(ctx context.Context, id string, status domain.TaskStatus) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			s.tasks[i].UpdatedAt = s.now()
			s.persist(ctx, ports.SnapshotTasks, s.tasks)
			return cloneTask(s.tasks[i]), true
		}
	}
	return domain.Task{}, false
}

// --- Users ---

// AddUser appends a user, assigning a fresh id when absent, and persists the
// collection.
func (s *Store) AddUser(ctx context.Context, u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users = append(s.users, u)
	s.persist(ctx, ports.SnapshotUsers, s.users)
	return u
}

// UpdateUser replaces the matching user in place. Returns false when the id
// is unknown.
func (s *Store) UpdateUser(ctx context.Context, u domain.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u
			s.persist(ctx, ports.SnapshotUsers, s.users)
			return true
		}
	}
	return false
}

// UpdateUserRole mutates only the role of the matching user.
func (s *Store) UpdateUserRole(ctx context.Context, id string, role domain.Role) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = role
			s.persist(ctx, ports.SnapshotUsers, s.users)
			return s.users[i], true
		}
	}
	return domain.User{}, false
}

// --- Read accessors (defensive copies, insertion order) ---

func (s *Store) Users() []domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.User(nil), s.users...)
}

func (s *Store) Projects() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = cloneProject(p)
	}
	return out
}

func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = cloneTask(t)
	}
	return out
}

func (s *Store) UserByID(id string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) UserByEmail(email string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return domain.User{}, false
}

func (s *Store) ProjectByID(id string) (domain.Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return cloneProject(p), true
		}
	}
	return domain.Project{}, false
}

func (s *Store) TaskByID(id string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return cloneTask(t), true
		}
	}
	return domain.Task{}, false
}

func cloneProject(p domain.Project) domain.Project {
	p.Members = append([]string(nil), p.Members...)
	return p
}

func cloneTask(t domain.Task) domain.Task {
	t.AssignedTo = append([]string(nil), t.AssignedTo...)
	return t
}
