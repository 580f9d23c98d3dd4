package ports

import (
	"context"
	"time"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// CreateTaskInput carries all data needed to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	ProjectID   string
	AssignedTo  []string
	DueDate     time.Time
}

// UpdateTaskInput is a full replacement of the identified task. CreatedBy and
// CreatedAt are immutable; UpdatedAt is stamped by the store.
type UpdateTaskInput struct {
	ID          string
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	ProjectID   string
	AssignedTo  []string
	DueDate     time.Time
}

// TaskService defines the role-gated task use cases.
type TaskService interface {
	// List returns the tasks visible to the actor, in store order.
	List(ctx context.Context, actor *domain.User) ([]domain.Task, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Task, error)
	Create(ctx context.Context, actor *domain.User, in CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, actor *domain.User, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	// UpdateStatus mutates only status and updatedAt. This is the one
	// mutation an assigned Developer may perform.
	UpdateStatus(ctx context.Context, actor *domain.User, taskID string, status domain.TaskStatus) (*domain.Task, error)
}
