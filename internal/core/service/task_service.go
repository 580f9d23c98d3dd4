package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/PUNEET-EMM/Project-Management/internal/api/metrics"
	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/permission"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
	"github.com/PUNEET-EMM/Project-Management/internal/core/store"
)

// TaskService applies the permission rules for task CRUD and the status-only
// transition, then delegates to the store.
type TaskService struct {
	store    *store.Store
	activity ports.ActivitySink
	log      zerolog.Logger
}

func NewTaskService(st *store.Store, activity ports.ActivitySink, log zerolog.Logger) *TaskService {
	return &TaskService{store: st, activity: activity, log: log}
}

func (s *TaskService) List(ctx context.Context, actor *domain.User) ([]domain.Task, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	return permission.VisibleTasks(actor, s.store.Tasks()), nil
}

func (s *TaskService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Task, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	t, ok := s.store.TaskByID(id)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if actor.Role != domain.RoleAdmin && actor.Role != domain.RoleProjectManager && !t.IsAssignee(actor.ID) {
		return nil, domain.ErrForbidden
	}
	return &t, nil
}

func (s *TaskService) Create(ctx context.Context, actor *domain.User, in ports.CreateTaskInput) (*domain.Task, error) {
	if err := authorizeTaskManage(actor); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = domain.TaskToDo
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if !priority.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	if _, ok := s.store.ProjectByID(in.ProjectID); !ok {
		return nil, domain.ErrProjectNotFound
	}

	created := s.store.AddTask(ctx, domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Priority:    priority,
		ProjectID:   in.ProjectID,
		AssignedTo:  in.AssignedTo,
		DueDate:     in.DueDate,
		CreatedBy:   actor.ID,
	})

	metrics.TaskMutationsTotal.WithLabelValues("created").Inc()
	emitActivity(s.activity, actor, "task", created.ID, "created", created.Title)
	s.log.Info().Str("task_id", created.ID).Str("actor_id", actor.ID).Msg("task created")
	return &created, nil
}

func (s *TaskService) Update(ctx context.Context, actor *domain.User, in ports.UpdateTaskInput) (*domain.Task, error) {
	existing, ok := s.store.TaskByID(in.ID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if actor == nil || permission.IsReadOnly(actor.Role) || !permission.CanEditTask(actor, &existing) {
		metrics.AuthorizationDeniedTotal.WithLabelValues("task").Inc()
		return nil, domain.ErrForbidden
	}
	if !in.Status.Valid() || !in.Priority.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if !s.store.UpdateTask(ctx, domain.Task{
		ID:          in.ID,
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		ProjectID:   in.ProjectID,
		AssignedTo:  in.AssignedTo,
		DueDate:     in.DueDate,
	}) {
		return nil, domain.ErrTaskNotFound
	}

	updated, _ := s.store.TaskByID(in.ID)
	metrics.TaskMutationsTotal.WithLabelValues("updated").Inc()
	emitActivity(s.activity, actor, "task", in.ID, "updated", updated.Title)
	return &updated, nil
}

func (s *TaskService) Delete(ctx context.Context, actor *domain.User, id string) error {
	existing, ok := s.store.TaskByID(id)
	if !ok {
		return domain.ErrTaskNotFound
	}
	if actor == nil || permission.IsReadOnly(actor.Role) || !permission.CanEditTask(actor, &existing) {
		metrics.AuthorizationDeniedTotal.WithLabelValues("task").Inc()
		return domain.ErrForbidden
	}

	if !s.store.DeleteTask(ctx, id) {
		return domain.ErrTaskNotFound
	}

	metrics.TaskMutationsTotal.WithLabelValues("deleted").Inc()
	emitActivity(s.activity, actor, "task", id, "deleted", existing.Title)
	s.log.Info().Str("task_id", id).Str("actor_id", actor.ID).Msg("task deleted")
	return nil
}

// UpdateStatus is the one mutation an assigned Developer may perform on a
// task it does not otherwise manage.
func (s *TaskService) UpdateStatus(ctx context.Context, actor *domain.User, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	existing, ok := s.store.TaskByID(taskID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	if actor == nil || permission.IsReadOnly(actor.Role) || !permission.CanUpdateTaskStatus(actor.Role, &existing, actor.ID) {
		metrics.AuthorizationDeniedTotal.WithLabelValues("task_status").Inc()
		return nil, domain.ErrForbidden
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	updated, ok := s.store.UpdateTaskStatus(ctx, taskID, status)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	metrics.TaskMutationsTotal.WithLabelValues("status_changed").Inc()
	emitActivity(s.activity, actor, "task", taskID, "status_changed", string(status))
	return &updated, nil
}

func authorizeTaskManage(actor *domain.User) error {
	if actor == nil {
		return domain.ErrForbidden
	}
	if permission.IsReadOnly(actor.Role) || !permission.CanManageTasks(actor.Role) {
		metrics.AuthorizationDeniedTotal.WithLabelValues("task").Inc()
		return domain.ErrForbidden
	}
	return nil
}
