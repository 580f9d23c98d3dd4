package permission

import (
	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// VisibleProjects returns the subset of projects the user may see, preserving
// source order. Admin sees everything; everyone else sees projects they are a
// member of or created.
func VisibleProjects(user *domain.User, projects []domain.Project) []domain.Project {
	if user == nil {
		return nil
	}
	if user.Role == domain.RoleAdmin {
		return projects
	}
	visible := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if p.HasMember(user.ID) || p.CreatedBy == user.ID {
			visible = append(visible, p)
		}
	}
	return visible
}

// VisibleTasks returns the subset of tasks the user may see, preserving
// source order. Admin and Project Manager see every task; a Project Manager
// gets full visibility even though their edit rights on projects are
// ownership-scoped. Developer and Viewer see only tasks assigned to them.
func VisibleTasks(user *domain.User, tasks []domain.Task) []domain.Task {
	if user == nil {
		return nil
	}
	if user.Role == domain.RoleAdmin || user.Role == domain.RoleProjectManager {
		return tasks
	}
	visible := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsAssignee(user.ID) {
			visible = append(visible, t)
		}
	}
	return visible
}
