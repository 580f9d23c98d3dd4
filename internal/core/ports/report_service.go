package ports

import (
	"context"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// StatusCount is one bucket in a breakdown chart.
type StatusCount struct {
	Name  string
	Count int
}

// Contributor summarizes one user's share of the actor-visible tasks.
type Contributor struct {
	Name       string
	Completed  int
	InProgress int
}

// Report aggregates the actor-visible tasks and projects for the reports
// view. CompletionRate is a rounded percentage, 0 when there are no tasks.
type Report struct {
	TotalTasks      int
	Completed       int
	InProgress      int
	CompletionRate  int
	TaskStatus      []StatusCount
	ProjectStatus   []StatusCount
	Priority        []StatusCount
	TopContributors []Contributor
}

// Dashboard is the landing-page summary for the acting user.
type Dashboard struct {
	VisibleProjects int
	VisibleTasks    int
	MyTasks         int
	MyCompleted     int
	Overdue         []domain.Task
	// Upcoming holds at most five not-done tasks due within the next week,
	// soonest first.
	Upcoming []domain.Task
	// RecentProjects holds at most three visible projects, newest first.
	RecentProjects []domain.Project
}

// ReportService computes read-only aggregations over the actor's visible
// slice of the data.
type ReportService interface {
	// Summary requires report access (Admin or Project Manager).
	Summary(ctx context.Context, actor *domain.User) (*Report, error)
	// Dashboard is available to every authenticated user.
	Dashboard(ctx context.Context, actor *domain.User) (*Dashboard, error)
}
