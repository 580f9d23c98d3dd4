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

// UserService covers user listing, role administration and the teams view.
type UserService struct {
	store    *store.Store
	activity ports.ActivitySink
	log      zerolog.Logger
}

func NewUserService(st *store.Store, activity ports.ActivitySink, log zerolog.Logger) *UserService {
	return &UserService{store: st, activity: activity, log: log}
}

func (s *UserService) List(ctx context.Context, actor *domain.User) ([]domain.User, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	return s.store.Users(), nil
}

// UpdateRole mutates only the target's role. Role is Admin-mutable only.
func (s *UserService) UpdateRole(ctx context.Context, actor *domain.User, userID string, role domain.Role) (*domain.User, error) {
	if actor == nil || !permission.CanManageRoles(actor.Role) {
		metrics.AuthorizationDeniedTotal.WithLabelValues("role").Inc()
		return nil, domain.ErrForbidden
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	updated, ok := s.store.UpdateUserRole(ctx, userID, role)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	metrics.UserMutationsTotal.WithLabelValues("role_changed").Inc()
	emitActivity(s.activity, actor, "user", userID, "role_changed", string(role))
	s.log.Info().
		Str("user_id", userID).
		Str("role", string(role)).
		Str("actor_id", actor.ID).
		Msg("user role updated")
	return &updated, nil
}

// Teams groups every member by role, annotated with the names of the
// actor-visible projects they belong to.
func (s *UserService) Teams(ctx context.Context, actor *domain.User) (*ports.TeamsResult, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}

	users := s.store.Users()
	visible := permission.VisibleProjects(actor, s.store.Projects())

	active := 0
	for _, p := range visible {
		if p.Status == domain.ProjectActive {
			active++
		}
	}

	byRole := make(map[domain.Role][]ports.TeamMember)
	for _, u := range users {
		var names []string
		for _, p := range visible {
			if p.HasMember(u.ID) {
				names = append(names, p.Name)
			}
		}
		byRole[u.Role] = append(byRole[u.Role], ports.TeamMember{User: u, Projects: names})
	}

	groups := make([]ports.TeamGroup, 0, len(byRole))
	for _, role := range domain.Roles {
		if members, ok := byRole[role]; ok {
			groups = append(groups, ports.TeamGroup{Role: role, Members: members})
		}
	}

	return &ports.TeamsResult{
		TotalMembers:   len(users),
		ActiveProjects: active,
		CanManage:      permission.CanManageTeams(actor.Role),
		Groups:         groups,
	}, nil
}
