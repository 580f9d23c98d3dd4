package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Summary
// ---------------------------------------------------------------------------

func TestReportService_Summary_AdminCounts(t *testing.T) {
	st := seededStore(t)
	svc := NewReportService(st, discardLogger)
	admin := seededUser(t, st, "u1")

	report, err := svc.Summary(context.Background(), admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.TotalTasks != 4 {
		t.Errorf("total tasks: got %d, want 4", report.TotalTasks)
	}
	if report.Completed != 1 {
		t.Errorf("completed: got %d, want 1", report.Completed)
	}
	if report.InProgress != 1 {
		t.Errorf("in progress: got %d, want 1", report.InProgress)
	}
	// 1 of 4 done, rounded.
	if report.CompletionRate != 25 {
		t.Errorf("completion rate: got %d, want 25", report.CompletionRate)
	}

	// Buckets come back in enum order with zero counts included.
	wantTask := map[string]int{"To Do": 1, "In Progress": 1, "Review": 1, "Done": 1}
	for _, sc := range report.TaskStatus {
		if sc.Count != wantTask[sc.Name] {
			t.Errorf("task status %q: got %d, want %d", sc.Name, sc.Count, wantTask[sc.Name])
		}
	}
	wantProject := map[string]int{"Planning": 1, "Active": 1, "On Hold": 1, "Completed": 0}
	for _, sc := range report.ProjectStatus {
		if sc.Count != wantProject[sc.Name] {
			t.Errorf("project status %q: got %d, want %d", sc.Name, sc.Count, wantProject[sc.Name])
		}
	}
}

func TestReportService_Summary_TopContributors(t *testing.T) {
	st := seededStore(t)
	svc := NewReportService(st, discardLogger)
	admin := seededUser(t, st, "u1")

	report, err := svc.Summary(context.Background(), admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only Carol has completed or in-progress assignments in the seed data.
	if len(report.TopContributors) != 1 {
		t.Fatalf("expected 1 contributor, got %d", len(report.TopContributors))
	}
	c := report.TopContributors[0]
	if c.Name != "Carol Chen" || c.Completed != 1 || c.InProgress != 1 {
		t.Errorf("contributor: got %+v", c)
	}
}

func TestReportService_Summary_ScopedToPMVisibility(t *testing.T) {
	st := seededStore(t)
	svc := NewReportService(st, discardLogger)
	pm := seededUser(t, st, "u2")

	report, err := svc.Summary(context.Background(), pm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// PM sees every task but only the projects they created (p1, p3).
	if report.TotalTasks != 4 {
		t.Errorf("pm total tasks: got %d, want 4", report.TotalTasks)
	}
	total := 0
	for _, sc := range report.ProjectStatus {
		total += sc.Count
	}
	if total != 2 {
		t.Errorf("pm project buckets must cover 2 visible projects, got %d", total)
	}
}

func TestReportService_Summary_DeveloperForbidden(t *testing.T) {
	st := seededStore(t)
	svc := NewReportService(st, discardLogger)
	dev := seededUser(t, st, "u3")

	_, err := svc.Summary(context.Background(), dev)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestReportService_Summary_EmptyDataZeroRate(t *testing.T) {
	st := seededStore(t)
	svc := NewReportService(st, discardLogger)
	admin := seededUser(t, st, "u1")

	for _, task := range st.Tasks() {
		st.DeleteTask(context.Background(), task.ID)
	}

	report, err := svc.Summary(context.Background(), admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.CompletionRate != 0 {
		t.Errorf("empty data: completion rate must be 0, got %d", report.CompletionRate)
	}
}

// ---------------------------------------------------------------------------
// Dashboard
// ---------------------------------------------------------------------------

func TestReportService_Dashboard_DeveloperView(t *testing.T) {
	st := seededStore(t)
	svc := NewReportService(st, discardLogger)
	// Seed due dates hang off 2026-02-01; fix "now" between them.
	svc.now = func() time.Time { return time.Date(2026, 2, 25, 9, 0, 0, 0, time.UTC) }
	dev := seededUser(t, st, "u3")

	d, err := svc.Dashboard(context.Background(), dev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if d.VisibleProjects != 2 {
		t.Errorf("visible projects: got %d, want 2", d.VisibleProjects)
	}
	if d.VisibleTasks != 3 {
		t.Errorf("visible tasks: got %d, want 3", d.VisibleTasks)
	}
	if d.MyTasks != 3 {
		t.Errorf("my tasks: got %d, want 3", d.MyTasks)
	}
	if d.MyCompleted != 1 {
		t.Errorf("my completed: got %d, want 1", d.MyCompleted)
	}
	// t1 (due 2026-02-15) is overdue; t3 (due 2026-03-01) is within the week.
	if len(d.Overdue) != 1 || d.Overdue[0].ID != "t1" {
		t.Errorf("overdue: got %+v", taskIDs(d.Overdue))
	}
	if len(d.Upcoming) != 1 || d.Upcoming[0].ID != "t3" {
		t.Errorf("upcoming: got %+v", taskIDs(d.Upcoming))
	}
	// Most recently created visible project first.
	if len(d.RecentProjects) != 2 || d.RecentProjects[0].ID != "p2" {
		t.Errorf("recent projects: got %+v", projectIDs(d.RecentProjects))
	}
}

func TestReportService_Dashboard_CompletedTasksNeverOverdue(t *testing.T) {
	st := seededStore(t)
	svc := NewReportService(st, discardLogger)
	// Far in the future: every due date has passed.
	svc.now = func() time.Time { return time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC) }
	dev := seededUser(t, st, "u3")

	d, err := svc.Dashboard(context.Background(), dev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, task := range d.Overdue {
		if task.Status == domain.TaskDone {
			t.Errorf("done task %s must not be listed overdue", task.ID)
		}
	}
}

func TestReportService_Dashboard_UpcomingCappedAtFive(t *testing.T) {
	st := seededStore(t)
	svc := NewReportService(st, discardLogger)
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	admin := seededUser(t, st, "u1")

	for i := 0; i < 8; i++ {
		st.AddTask(context.Background(), domain.Task{
			Title:      "filler",
			Status:     domain.TaskToDo,
			Priority:   domain.PriorityLow,
			ProjectID:  "p1",
			AssignedTo: []string{"u1"},
			DueDate:    now.AddDate(0, 0, 1+i%5),
			CreatedBy:  "u1",
		})
	}

	d, err := svc.Dashboard(context.Background(), admin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Upcoming) != 5 {
		t.Errorf("upcoming must cap at 5, got %d", len(d.Upcoming))
	}
	for i := 1; i < len(d.Upcoming); i++ {
		if d.Upcoming[i].DueDate.Before(d.Upcoming[i-1].DueDate) {
			t.Error("upcoming must be sorted by due date ascending")
		}
	}
}

func taskIDs(tasks []domain.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.ID
	}
	return out
}

func projectIDs(projects []domain.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}
