package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/permission"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
	"github.com/PUNEET-EMM/Project-Management/internal/core/store"
)

// ReportService computes read-only aggregations over the actor's visible
// slice of the data. Nothing here mutates state.
type ReportService struct {
	store *store.Store
	log   zerolog.Logger
	now   func() time.Time
}

func NewReportService(st *store.Store, log zerolog.Logger) *ReportService {
	return &ReportService{
		store: st,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReportService) Summary(ctx context.Context, actor *domain.User) (*ports.Report, error) {
	if actor == nil || !permission.CanViewReports(actor.Role) {
		return nil, domain.ErrForbidden
	}

	tasks := permission.VisibleTasks(actor, s.store.Tasks())
	projects := permission.VisibleProjects(actor, s.store.Projects())

	taskStatus := []ports.StatusCount{
		{Name: string(domain.TaskToDo), Count: countTasks(tasks, func(t domain.Task) bool { return t.Status == domain.TaskToDo })},
		{Name: string(domain.TaskInProgress), Count: countTasks(tasks, func(t domain.Task) bool { return t.Status == domain.TaskInProgress })},
		{Name: string(domain.TaskReview), Count: countTasks(tasks, func(t domain.Task) bool { return t.Status == domain.TaskReview })},
		{Name: string(domain.TaskDone), Count: countTasks(tasks, func(t domain.Task) bool { return t.Status == domain.TaskDone })},
	}
	projectStatus := []ports.StatusCount{
		{Name: string(domain.ProjectPlanning), Count: countProjects(projects, domain.ProjectPlanning)},
		{Name: string(domain.ProjectActive), Count: countProjects(projects, domain.ProjectActive)},
		{Name: string(domain.ProjectOnHold), Count: countProjects(projects, domain.ProjectOnHold)},
		{Name: string(domain.ProjectCompleted), Count: countProjects(projects, domain.ProjectCompleted)},
	}
	priority := []ports.StatusCount{
		{Name: string(domain.PriorityLow), Count: countTasks(tasks, func(t domain.Task) bool { return t.Priority == domain.PriorityLow })},
		{Name: string(domain.PriorityMedium), Count: countTasks(tasks, func(t domain.Task) bool { return t.Priority == domain.PriorityMedium })},
		{Name: string(domain.PriorityHigh), Count: countTasks(tasks, func(t domain.Task) bool { return t.Priority == domain.PriorityHigh })},
		{Name: string(domain.PriorityCritical), Count: countTasks(tasks, func(t domain.Task) bool { return t.Priority == domain.PriorityCritical })},
	}

	done := taskStatus[3].Count
	rate := 0
	if len(tasks) > 0 {
		rate = int(math.Round(float64(done) / float64(len(tasks)) * 100))
	}

	return &ports.Report{
		TotalTasks:      len(tasks),
		Completed:       done,
		InProgress:      taskStatus[1].Count,
		CompletionRate:  rate,
		TaskStatus:      taskStatus,
		ProjectStatus:   projectStatus,
		Priority:        priority,
		TopContributors: s.topContributors(tasks),
	}, nil
}

// topContributors ranks users by completed visible tasks, keeping at most
// five with any activity.
func (s *ReportService) topContributors(tasks []domain.Task) []ports.Contributor {
	var out []ports.Contributor
	for _, u := range s.store.Users() {
		c := ports.Contributor{Name: u.Name}
		for _, t := range tasks {
			if !t.IsAssignee(u.ID) {
				continue
			}
			switch t.Status {
			case domain.TaskDone:
				c.Completed++
			case domain.TaskInProgress:
				c.InProgress++
			}
		}
		if c.Completed > 0 || c.InProgress > 0 {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Completed > out[j].Completed })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func (s *ReportService) Dashboard(ctx context.Context, actor *domain.User) (*ports.Dashboard, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}

	tasks := permission.VisibleTasks(actor, s.store.Tasks())
	projects := permission.VisibleProjects(actor, s.store.Projects())
	now := s.now()
	weekAhead := now.AddDate(0, 0, 7)

	var mine, overdue, upcoming []domain.Task
	completed := 0
	for _, t := range tasks {
		if !t.IsAssignee(actor.ID) {
			continue
		}
		mine = append(mine, t)
		if t.Status == domain.TaskDone {
			completed++
			continue
		}
		if t.DueDate.Before(now) {
			overdue = append(overdue, t)
		} else if !t.DueDate.After(weekAhead) {
			upcoming = append(upcoming, t)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].DueDate.Before(upcoming[j].DueDate) })
	if len(upcoming) > 5 {
		upcoming = upcoming[:5]
	}

	recent := append([]domain.Project(nil), projects...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > 3 {
		recent = recent[:3]
	}

	return &ports.Dashboard{
		VisibleProjects: len(projects),
		VisibleTasks:    len(tasks),
		MyTasks:         len(mine),
		MyCompleted:     completed,
		Overdue:         overdue,
		Upcoming:        upcoming,
		RecentProjects:  recent,
	}, nil
}

func countTasks(tasks []domain.Task, match func(domain.Task) bool) int {
	n := 0
	for _, t := range tasks {
		if match(t) {
			n++
		}
	}
	return n
}

func countProjects(projects []domain.Project, status domain.ProjectStatus) int {
	n := 0
	for _, p := range projects {
		if p.Status == status {
			n++
		}
	}
	return n
}
