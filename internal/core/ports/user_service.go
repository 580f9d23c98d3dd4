package ports

import (
	"context"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// TeamMember pairs a user with the names of the actor-visible projects they
// belong to.
type TeamMember struct {
	User     domain.User
	Projects []string
}

// TeamGroup collects the members holding one role.
type TeamGroup struct {
	Role    domain.Role
	Members []TeamMember
}

// TeamsResult is the teams view: members grouped by role, with totals scoped
// to the actor's visible projects.
type TeamsResult struct {
	TotalMembers   int
	ActiveProjects int
	CanManage      bool
	Groups         []TeamGroup
}

// UserService defines user listing, role administration and the teams view.
type UserService interface {
	List(ctx context.Context, actor *domain.User) ([]domain.User, error)
	// UpdateRole changes only the target user's role. Admin only.
	UpdateRole(ctx context.Context, actor *domain.User, userID string, role domain.Role) (*domain.User, error)
	Teams(ctx context.Context, actor *domain.User) (*TeamsResult, error)
}
