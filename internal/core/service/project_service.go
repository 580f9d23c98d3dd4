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

// ProjectService applies the permission rules and delegates mutations to the
// store. The store itself performs no enforcement; this layer is the only
// caller.
type ProjectService struct {
	store    *store.Store
	activity ports.ActivitySink
	log      zerolog.Logger
}

func NewProjectService(st *store.Store, activity ports.ActivitySink, log zerolog.Logger) *ProjectService {
	return &ProjectService{store: st, activity: activity, log: log}
}

func (s *ProjectService) List(ctx context.Context, actor *domain.User) ([]domain.Project, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	return permission.VisibleProjects(actor, s.store.Projects()), nil
}

func (s *ProjectService) Get(ctx context.Context, actor *domain.User, id string) (*domain.Project, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	p, ok := s.store.ProjectByID(id)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if actor.Role != domain.RoleAdmin && !p.HasMember(actor.ID) && p.CreatedBy != actor.ID {
		return nil, domain.ErrForbidden
	}
	return &p, nil
}

func (s *ProjectService) Create(ctx context.Context, actor *domain.User, in ports.CreateProjectInput) (*domain.Project, error) {
	if err := authorizeProjectCreate(actor); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = domain.ProjectPlanning
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	created := s.store.AddProject(ctx, domain.Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		DueDate:     in.DueDate,
		CreatedBy:   actor.ID,
		Members:     in.Members,
	})

	metrics.ProjectMutationsTotal.WithLabelValues("created").Inc()
	s.emit(actor, "project", created.ID, "created", created.Name)
	s.log.Info().Str("project_id", created.ID).Str("actor_id", actor.ID).Msg("project created")
	return &created, nil
}

func (s *ProjectService) Update(ctx context.Context, actor *domain.User, in ports.UpdateProjectInput) (*domain.Project, error) {
	existing, ok := s.store.ProjectByID(in.ID)
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	if err := authorizeProjectEdit(actor, &existing); err != nil {
		return nil, err
	}
	if !in.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	if !s.store.UpdateProject(ctx, domain.Project{
		ID:          in.ID,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		DueDate:     in.DueDate,
		Members:     in.Members,
	}) {
		return nil, domain.ErrProjectNotFound
	}

	updated, _ := s.store.ProjectByID(in.ID)
	metrics.ProjectMutationsTotal.WithLabelValues("updated").Inc()
	s.emit(actor, "project", in.ID, "updated", updated.Name)
	return &updated, nil
}

func (s *ProjectService) Delete(ctx context.Context, actor *domain.User, id string) error {
	existing, ok := s.store.ProjectByID(id)
	if !ok {
		return domain.ErrProjectNotFound
	}
	if err := authorizeProjectEdit(actor, &existing); err != nil {
		return err
	}

	if !s.store.DeleteProject(ctx, id) {
		return domain.ErrProjectNotFound
	}

	metrics.ProjectMutationsTotal.WithLabelValues("deleted").Inc()
	s.emit(actor, "project", id, "deleted", existing.Name)
	s.log.Info().Str("project_id", id).Str("actor_id", actor.ID).Msg("project deleted")
	return nil
}

func authorizeProjectCreate(actor *domain.User) error {
	if actor == nil {
		return domain.ErrForbidden
	}
	if permission.IsReadOnly(actor.Role) || !permission.CanManageProjects(actor.Role) {
		metrics.AuthorizationDeniedTotal.WithLabelValues("project").Inc()
		return domain.ErrForbidden
	}
	return nil
}

func authorizeProjectEdit(actor *domain.User, p *domain.Project) error {
	if actor == nil || permission.IsReadOnly(actor.Role) || !permission.CanEditProject(actor, p) {
		metrics.AuthorizationDeniedTotal.WithLabelValues("project").Inc()
		return domain.ErrForbidden
	}
	return nil
}

func (s *ProjectService) emit(actor *domain.User, entity, id, action, detail string) {
	emitActivity(s.activity, actor, entity, id, action, detail)
}
