// Package permission holds the role-based decision rules. Every function is
// pure and fails closed: an unknown or empty role grants nothing.
package permission

import (
	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// CanManageRoles reports whether role may change other users' roles.
func CanManageRoles(role domain.Role) bool {
	return role == domain.RoleAdmin
}

// CanManageAllProjects reports whether role bypasses project ownership checks.
func CanManageAllProjects(role domain.Role) bool {
	return role == domain.RoleAdmin
}

// CanManageProjects reports whether role may create projects and manage the
// ones it owns. Ownership is still checked per project; see CanEditProject.
func CanManageProjects(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleProjectManager
}

// CanManageAllTasks reports whether role may edit any task regardless of
// assignment.
func CanManageAllTasks(role domain.Role) bool {
	return role == domain.RoleAdmin
}

// CanManageTasks reports whether role may create, edit and delete tasks.
func CanManageTasks(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleProjectManager
}

// CanViewReports reports whether role may access the reports view.
func CanViewReports(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleProjectManager
}

// CanManageTeams reports whether role may manage team membership.
func CanManageTeams(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleProjectManager
}

// IsReadOnly reports whether role is view-only. When true, every mutation
// affordance is suppressed regardless of the other predicates.
func IsReadOnly(role domain.Role) bool {
	return role == domain.RoleViewer
}

// CanUpdateTaskStatus reports whether the user identified by userID may move
// the given task between statuses. This is the one decision that is resource-
// and identity-sensitive: a Developer may only move tasks assigned to them.
func CanUpdateTaskStatus(role domain.Role, task *domain.Task, userID string) bool {
	if role == domain.RoleAdmin || role == domain.RoleProjectManager {
		return true
	}
	if role == domain.RoleDeveloper {
		return task != nil && task.IsAssignee(userID)
	}
	return false
}

// CanEditProject applies the ownership rule for edit-or-delete on a specific
// project: permitted when the role manages all projects, or when the user
// created the project. Project Manager alone does not grant edit rights on
// projects it did not create.
func CanEditProject(user *domain.User, project *domain.Project) bool {
	if user == nil || project == nil {
		return false
	}
	if CanManageAllProjects(user.Role) {
		return true
	}
	return CanManageProjects(user.Role) && project.CreatedBy == user.ID
}

// CanEditTask applies the same ownership rule to tasks: task managers may
// edit any task they created, and all-task managers may edit everything.
func CanEditTask(user *domain.User, task *domain.Task) bool {
	if user == nil || task == nil {
		return false
	}
	if CanManageAllTasks(user.Role) {
		return true
	}
	return CanManageTasks(user.Role)
}
