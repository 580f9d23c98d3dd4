package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
)

// UserHandler handles user listing, role administration and the teams view.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=Admin 'Project Manager' Developer Viewer"`
}

type listUsersResponse struct {
	Data  []domain.User `json:"data"`
	Total int           `json:"total"`
}

type teamMemberResponse struct {
	User     domain.User `json:"user"`
	Projects []string    `json:"projects"`
}

type teamGroupResponse struct {
	Role    string               `json:"role"`
	Members []teamMemberResponse `json:"members"`
}

type teamsResponse struct {
	TotalMembers   int                 `json:"total_members"`
	ActiveProjects int                 `json:"active_projects"`
	CanManage      bool                `json:"can_manage"`
	Groups         []teamGroupResponse `json:"groups"`
}

// List returns every user.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	users, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listUsersResponse{Data: users, Total: len(users)})
}

// UpdateRole changes only the target user's role. Admin only.
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	user, err := h.service.UpdateRole(c.Request().Context(), actor, c.Param("id"), domain.Role(req.Role))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Teams returns members grouped by role with their visible-project names.
//
// @Summary      Teams view
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  teamsResponse
// @Router       /v1/teams [get]
func (h *UserHandler) Teams(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	teams, err := h.service.Teams(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	groups := make([]teamGroupResponse, 0, len(teams.Groups))
	for _, g := range teams.Groups {
		members := make([]teamMemberResponse, 0, len(g.Members))
		for _, m := range g.Members {
			members = append(members, teamMemberResponse{User: m.User, Projects: m.Projects})
		}
		groups = append(groups, teamGroupResponse{Role: string(g.Role), Members: members})
	}

	return c.JSON(http.StatusOK, teamsResponse{
		TotalMembers:   teams.TotalMembers,
		ActiveProjects: teams.ActiveProjects,
		CanManage:      teams.CanManage,
		Groups:         groups,
	})
}
