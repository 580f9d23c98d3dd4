package service

import (
	"context"
	"errors"
	"testing"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Visibility
// ---------------------------------------------------------------------------

func TestTaskService_List_PMSeesAllTasks(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	pm := seededUser(t, st, "u2")

	tasks, err := svc.List(context.Background(), pm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// PM has full task visibility even though project edits are ownership-scoped.
	if len(tasks) != 4 {
		t.Errorf("pm: expected 4 tasks, got %d", len(tasks))
	}
}

func TestTaskService_List_DeveloperSeesAssignedOnly(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	dev := seededUser(t, st, "u4") // assigned to t2 and t3

	tasks, err := svc.List(context.Background(), dev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("developer u4: expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != "t2" || tasks[1].ID != "t3" {
		t.Errorf("expected [t2 t3], got [%s %s]", tasks[0].ID, tasks[1].ID)
	}
}

func TestTaskService_Get_UnassignedDeveloperForbidden(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	dev := seededUser(t, st, "u4") // not assigned to t1

	_, err := svc.Get(context.Background(), dev, "t1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestTaskService_Create_DefaultsAndStamps(t *testing.T) {
	st := seededStore(t)
	sink := &stubSink{}
	svc := NewTaskService(st, sink, discardLogger)
	pm := seededUser(t, st, "u2")

	created, err := svc.Create(context.Background(), pm, ports.CreateTaskInput{
		Title:     "Write onboarding doc",
		ProjectID: "p1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != domain.TaskToDo {
		t.Errorf("status must default to To Do, got %q", created.Status)
	}
	if created.Priority != domain.PriorityMedium {
		t.Errorf("priority must default to Medium, got %q", created.Priority)
	}
	if created.CreatedBy != "u2" {
		t.Errorf("creator must be the actor, got %q", created.CreatedBy)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps must be stamped")
	}
	if len(sink.events) != 1 || sink.events[0].Entity != "task" {
		t.Errorf("expected one task activity event, got %+v", sink.events)
	}
}

func TestTaskService_Create_UnknownProject(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	pm := seededUser(t, st, "u2")

	_, err := svc.Create(context.Background(), pm, ports.CreateTaskInput{
		Title:     "orphan",
		ProjectID: "missing",
	})
	if !errors.Is(err, domain.ErrProjectNotFound) {
		t.Errorf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestTaskService_Create_DeveloperForbidden(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	dev := seededUser(t, st, "u3")

	_, err := svc.Create(context.Background(), dev, ports.CreateTaskInput{
		Title:     "nope",
		ProjectID: "p1",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Update / Delete — no ownership rule on tasks
// ---------------------------------------------------------------------------

func TestTaskService_Update_PMEditsAnyTask(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	pm := seededUser(t, st, "u2")

	// t3 was created by u1; task edits carry no ownership check.
	updated, err := svc.Update(context.Background(), pm, ports.UpdateTaskInput{
		ID:        "t3",
		Title:     "API error audit v2",
		Status:    domain.TaskInProgress,
		Priority:  domain.PriorityHigh,
		ProjectID: "p1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "API error audit v2" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.CreatedBy != "u1" {
		t.Errorf("createdBy must survive update, got %q", updated.CreatedBy)
	}
}

func TestTaskService_Update_ViewerForbidden(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	viewer := seededUser(t, st, "u5")

	_, err := svc.Update(context.Background(), viewer, ports.UpdateTaskInput{
		ID:       "t1",
		Title:    "nope",
		Status:   domain.TaskToDo,
		Priority: domain.PriorityLow,
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskService_Delete_DeveloperForbidden(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	dev := seededUser(t, st, "u3")

	if err := svc.Delete(context.Background(), dev, "t1"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if len(st.Tasks()) != 4 {
		t.Error("denied delete must not change the collection")
	}
}

// ---------------------------------------------------------------------------
// UpdateStatus — the Developer path
// ---------------------------------------------------------------------------

func TestTaskService_UpdateStatus_AssignedDeveloperAllowed(t *testing.T) {
	st := seededStore(t)
	sink := &stubSink{}
	svc := NewTaskService(st, sink, discardLogger)
	dev := seededUser(t, st, "u3") // assigned to t1

	updated, err := svc.UpdateStatus(context.Background(), dev, "t1", domain.TaskReview)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != domain.TaskReview {
		t.Errorf("status: got %q, want %q", updated.Status, domain.TaskReview)
	}
	if updated.Title != "Design landing page" {
		t.Error("status change must leave other fields untouched")
	}
	if len(sink.events) != 1 || sink.events[0].Action != "status_changed" {
		t.Errorf("expected status_changed activity, got %+v", sink.events)
	}
}

func TestTaskService_UpdateStatus_UnassignedDeveloperForbidden(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	dev := seededUser(t, st, "u4") // not assigned to t1

	_, err := svc.UpdateStatus(context.Background(), dev, "t1", domain.TaskDone)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	task, _ := st.TaskByID("t1")
	if task.Status != domain.TaskInProgress {
		t.Error("denied status change must leave the task unchanged")
	}
}

func TestTaskService_UpdateStatus_ViewerForbiddenEvenWhenAssigned(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)

	// Assign the viewer directly; read-only still wins.
	st.UpdateTask(context.Background(), domain.Task{
		ID:         "t2",
		Title:      "Set up CI pipeline",
		Status:     domain.TaskToDo,
		Priority:   domain.PriorityCritical,
		ProjectID:  "p3",
		AssignedTo: []string{"u5"},
	})
	viewer := seededUser(t, st, "u5")

	_, err := svc.UpdateStatus(context.Background(), viewer, "t2", domain.TaskDone)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for viewer, got %v", err)
	}
}

func TestTaskService_UpdateStatus_InvalidStatus(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	admin := seededUser(t, st, "u1")

	_, err := svc.UpdateStatus(context.Background(), admin, "t1", domain.TaskStatus("Archived"))
	if !errors.Is(err, domain.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestTaskService_UpdateStatus_NotFound(t *testing.T) {
	st := seededStore(t)
	svc := NewTaskService(st, nil, discardLogger)
	admin := seededUser(t, st, "u1")

	_, err := svc.UpdateStatus(context.Background(), admin, "missing", domain.TaskDone)
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}
