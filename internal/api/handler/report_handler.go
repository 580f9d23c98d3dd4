package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
)

// ReportHandler serves the read-only aggregation endpoints.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type statusCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type contributorResponse struct {
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"in_progress"`
}

type reportResponse struct {
	TotalTasks      int                   `json:"total_tasks"`
	Completed       int                   `json:"completed"`
	InProgress      int                   `json:"in_progress"`
	CompletionRate  int                   `json:"completion_rate"`
	TaskStatus      []statusCountResponse `json:"task_status"`
	ProjectStatus   []statusCountResponse `json:"project_status"`
	Priority        []statusCountResponse `json:"priority"`
	TopContributors []contributorResponse `json:"top_contributors"`
}

type dashboardResponse struct {
	VisibleProjects int              `json:"visible_projects"`
	VisibleTasks    int              `json:"visible_tasks"`
	MyTasks         int              `json:"my_tasks"`
	MyCompleted     int              `json:"my_completed"`
	Overdue         []domain.Task    `json:"overdue"`
	Upcoming        []domain.Task    `json:"upcoming"`
	RecentProjects  []domain.Project `json:"recent_projects"`
}

// Summary returns the reports view over the actor's visible data.
//
// @Summary      Reports summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reportResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/reports [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	report, err := h.service.Summary(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reportResponse{
		TotalTasks:      report.TotalTasks,
		Completed:       report.Completed,
		InProgress:      report.InProgress,
		CompletionRate:  report.CompletionRate,
		TaskStatus:      statusCounts(report.TaskStatus),
		ProjectStatus:   statusCounts(report.ProjectStatus),
		Priority:        statusCounts(report.Priority),
		TopContributors: contributors(report.TopContributors),
	})
}

// Dashboard returns the landing-page summary for the acting user.
//
// @Summary      Dashboard summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Router       /v1/dashboard [get]
func (h *ReportHandler) Dashboard(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	d, err := h.service.Dashboard(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		VisibleProjects: d.VisibleProjects,
		VisibleTasks:    d.VisibleTasks,
		MyTasks:         d.MyTasks,
		MyCompleted:     d.MyCompleted,
		Overdue:         d.Overdue,
		Upcoming:        d.Upcoming,
		RecentProjects:  d.RecentProjects,
	})
}

func statusCounts(in []ports.StatusCount) []statusCountResponse {
	out := make([]statusCountResponse, 0, len(in))
	for _, sc := range in {
		out = append(out, statusCountResponse{Name: sc.Name, Count: sc.Count})
	}
	return out
}

func contributors(in []ports.Contributor) []contributorResponse {
	out := make([]contributorResponse, 0, len(in))
	for _, ct := range in {
		out = append(out, contributorResponse{Name: ct.Name, Completed: ct.Completed, InProgress: ct.InProgress})
	}
	return out
}
