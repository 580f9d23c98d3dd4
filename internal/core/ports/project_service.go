package ports

import (
	"context"
	"time"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// CreateProjectInput carries all data needed to create a project. The acting
// user becomes the owner.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      domain.ProjectStatus
	DueDate     time.Time
	Members     []string
}

// UpdateProjectInput is a full replacement of the identified project.
// CreatedBy and CreatedAt are immutable and taken from the existing record.
type UpdateProjectInput struct {
	ID          string
	Name        string
	Description string
	Status      domain.ProjectStatus
	DueDate     time.Time
	Members     []string
}

// ProjectService defines the role-gated project use cases. Every call takes
// the acting user explicitly; there is no hidden session state.
type ProjectService interface {
	// List returns the projects visible to the actor, in store order.
	List(ctx context.Context, actor *domain.User) ([]domain.Project, error)
	Get(ctx context.Context, actor *domain.User, id string) (*domain.Project, error)
	Create(ctx context.Context, actor *domain.User, in CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, actor *domain.User, in UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
}
