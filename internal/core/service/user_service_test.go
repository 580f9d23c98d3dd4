package service

import (
	"context"
	"errors"
	"testing"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestUserService_List_ReturnsAllUsers(t *testing.T) {
	st := seededStore(t)
	svc := NewUserService(st, nil, discardLogger)
	viewer := seededUser(t, st, "u5")

	users, err := svc.List(context.Background(), viewer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 5 {
		t.Errorf("expected 5 users, got %d", len(users))
	}
}

// ---------------------------------------------------------------------------
// UpdateRole
// ---------------------------------------------------------------------------

func TestUserService_UpdateRole_AdminOnly(t *testing.T) {
	st := seededStore(t)
	sink := &stubSink{}
	svc := NewUserService(st, sink, discardLogger)
	admin := seededUser(t, st, "u1")

	updated, err := svc.UpdateRole(context.Background(), admin, "u3", domain.RoleProjectManager)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Role != domain.RoleProjectManager {
		t.Errorf("role: got %q, want %q", updated.Role, domain.RoleProjectManager)
	}
	if updated.Name != "Carol Chen" {
		t.Error("role change must leave other fields untouched")
	}
	if len(sink.events) != 1 || sink.events[0].Action != "role_changed" {
		t.Errorf("expected role_changed activity, got %+v", sink.events)
	}
}

func TestUserService_UpdateRole_PMForbidden(t *testing.T) {
	st := seededStore(t)
	svc := NewUserService(st, nil, discardLogger)
	pm := seededUser(t, st, "u2")

	_, err := svc.UpdateRole(context.Background(), pm, "u3", domain.RoleViewer)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	u, _ := st.UserByID("u3")
	if u.Role != domain.RoleDeveloper {
		t.Error("denied role change must leave the user unchanged")
	}
}

func TestUserService_UpdateRole_InvalidRole(t *testing.T) {
	st := seededStore(t)
	svc := NewUserService(st, nil, discardLogger)
	admin := seededUser(t, st, "u1")

	_, err := svc.UpdateRole(context.Background(), admin, "u3", domain.Role("Superuser"))
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Errorf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_UpdateRole_UnknownUser(t *testing.T) {
	st := seededStore(t)
	svc := NewUserService(st, nil, discardLogger)
	admin := seededUser(t, st, "u1")

	_, err := svc.UpdateRole(context.Background(), admin, "missing", domain.RoleViewer)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

// A role change takes effect for the target's subsequent requests: their
// visible task slice reflects the new role immediately.
func TestUserService_UpdateRole_ChangesVisibility(t *testing.T) {
	st := seededStore(t)
	userSvc := NewUserService(st, nil, discardLogger)
	taskSvc := NewTaskService(st, nil, discardLogger)
	admin := seededUser(t, st, "u1")

	dev := seededUser(t, st, "u3")
	before, _ := taskSvc.List(context.Background(), dev)
	if len(before) != 3 {
		t.Fatalf("developer u3 must see 3 assigned tasks, got %d", len(before))
	}

	if _, err := userSvc.UpdateRole(context.Background(), admin, "u3", domain.RoleProjectManager); err != nil {
		t.Fatalf("role change: %v", err)
	}

	promoted := seededUser(t, st, "u3")
	after, _ := taskSvc.List(context.Background(), promoted)
	if len(after) != 4 {
		t.Errorf("promoted pm must see all 4 tasks, got %d", len(after))
	}
}

// ---------------------------------------------------------------------------
// Teams
// ---------------------------------------------------------------------------

func TestUserService_Teams_GroupsByRoleInOrder(t *testing.T) {
	st := seededStore(t)
	svc := NewUserService(st, nil, discardLogger)
	admin := seededUser(t, st, "u1")

	res, err := svc.Teams(context.Background(), admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalMembers != 5 {
		t.Errorf("total members: got %d, want 5", res.TotalMembers)
	}
	if res.ActiveProjects != 1 {
		t.Errorf("active projects: got %d, want 1", res.ActiveProjects)
	}
	if !res.CanManage {
		t.Error("admin must be able to manage teams")
	}

	wantRoles := []domain.Role{domain.RoleAdmin, domain.RoleProjectManager, domain.RoleDeveloper, domain.RoleViewer}
	if len(res.Groups) != len(wantRoles) {
		t.Fatalf("expected %d groups, got %d", len(wantRoles), len(res.Groups))
	}
	for i, g := range res.Groups {
		if g.Role != wantRoles[i] {
			t.Errorf("group %d: got role %q, want %q", i, g.Role, wantRoles[i])
		}
	}
	// Two developers in the seed data.
	if len(res.Groups[2].Members) != 2 {
		t.Errorf("developer group: got %d members, want 2", len(res.Groups[2].Members))
	}
}

func TestUserService_Teams_ProjectNamesScopedToActorVisibility(t *testing.T) {
	st := seededStore(t)
	svc := NewUserService(st, nil, discardLogger)
	dev := seededUser(t, st, "u3") // sees p1 and p2 only

	res, err := svc.Teams(context.Background(), dev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.CanManage {
		t.Error("developer must not manage teams")
	}
	// u4 is on p1 (visible to u3) and p3 (not visible): only p1 may appear.
	for _, g := range res.Groups {
		for _, m := range g.Members {
			if m.User.ID != "u4" {
				continue
			}
			if len(m.Projects) != 1 || m.Projects[0] != "Website Redesign" {
				t.Errorf("u4 projects must be scoped to actor visibility, got %v", m.Projects)
			}
		}
	}
}
