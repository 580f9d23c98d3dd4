package domain

import "time"

// Role determines a user's permission and visibility defaults. The set is
// closed: anything that does not parse grants no permissions.
type Role string

const (
	RoleAdmin          Role = "Admin"
	RoleProjectManager Role = "Project Manager"
	RoleDeveloper      Role = "Developer"
	RoleViewer         Role = "Viewer"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleAdmin, RoleProjectManager, RoleDeveloper, RoleViewer}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleProjectManager, RoleDeveloper, RoleViewer:
		return true
	}
	return false
}

// ParseRole converts a string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// User models an actor in the system.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Credential is a login secret held by the authentication provider. It is
// matched by email and never leaves the auth layer.
type Credential struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
