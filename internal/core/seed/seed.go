// Package seed supplies the default collections used when no persisted
// snapshot exists, plus the matching login credentials.
package seed

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/store"
)

// DefaultPassword is the password every seeded account starts with.
const DefaultPassword = "password123"

// Users returns the default user collection, one account per role plus a
// second developer.
func Users() []domain.User {
	return []domain.User{
		{ID: "u1", Name: "Alice Johnson", Email: "alice@example.com", Role: domain.RoleAdmin},
		{ID: "u2", Name: "Bob Martinez", Email: "bob@example.com", Role: domain.RoleProjectManager},
		{ID: "u3", Name: "Carol Chen", Email: "carol@example.com", Role: domain.RoleDeveloper},
		{ID: "u4", Name: "David Okafor", Email: "david@example.com", Role: domain.RoleDeveloper},
		{ID: "u5", Name: "Eve Novak", Email: "eve@example.com", Role: domain.RoleViewer},
	}
}

// Projects returns the default project collection.
func Projects() []domain.Project {
	base := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	return []domain.Project{
		{
			ID:          "p1",
			Name:        "Website Redesign",
			Description: "Refresh the marketing site and migrate the CMS",
			Status:      domain.ProjectActive,
			DueDate:     base.AddDate(0, 3, 0),
			CreatedBy:   "u2",
			Members:     []string{"u3", "u4"},
			CreatedAt:   base,
		},
		{
			ID:          "p2",
			Name:        "Mobile App",
			Description: "Ship the v1 companion app",
			Status:      domain.ProjectPlanning,
			DueDate:     base.AddDate(0, 6, 0),
			CreatedBy:   "u1",
			Members:     []string{"u3"},
			CreatedAt:   base.AddDate(0, 0, 10),
		},
		{
			ID:          "p3",
			Name:        "Internal Tooling",
			Description: "Consolidate deployment scripts",
			Status:      domain.ProjectOnHold,
			DueDate:     base.AddDate(0, 2, 0),
			CreatedBy:   "u2",
			Members:     []string{"u4", "u5"},
			CreatedAt:   base.AddDate(0, 0, 20),
		},
	}
}

// Tasks returns the default task collection.
func Tasks() []domain.Task {
	base := time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)
	return []domain.Task{
		{
			ID:          "t1",
			Title:       "Design landing page",
			Description: "New hero section and pricing table",
			Status:      domain.TaskInProgress,
			Priority:    domain.PriorityHigh,
			ProjectID:   "p1",
			AssignedTo:  []string{"u3"},
			DueDate:     base.AddDate(0, 0, 14),
			CreatedBy:   "u2",
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			ID:          "t2",
			Title:       "Set up CI pipeline",
			Description: "Lint, test and deploy on every push",
			Status:      domain.TaskToDo,
			Priority:    domain.PriorityCritical,
			ProjectID:   "p3",
			AssignedTo:  []string{"u4"},
			DueDate:     base.AddDate(0, 0, 7),
			CreatedBy:   "u2",
			CreatedAt:   base,
			UpdatedAt:   base,
		},
		{
			ID:          "t3",
			Title:       "API error audit",
			Description: "Catalogue every 5xx path",
			Status:      domain.TaskReview,
			Priority:    domain.PriorityMedium,
			ProjectID:   "p1",
			AssignedTo:  []string{"u3", "u4"},
			DueDate:     base.AddDate(0, 1, 0),
			CreatedBy:   "u1",
			CreatedAt:   base.AddDate(0, 0, 2),
			UpdatedAt:   base.AddDate(0, 0, 5),
		},
		{
			ID:          "t4",
			Title:       "Draft app store listing",
			Description: "Screenshots and copy for review",
			Status:      domain.TaskDone,
			Priority:    domain.PriorityLow,
			ProjectID:   "p2",
			AssignedTo:  []string{"u3"},
			DueDate:     base.AddDate(0, 0, 21),
			CreatedBy:   "u1",
			CreatedAt:   base.AddDate(0, 0, 3),
			UpdatedAt:   base.AddDate(0, 0, 12),
		},
	}
}

// Collections bundles the default entity collections for store.Load.
func Collections() store.Seed {
	return store.Seed{Users: Users(), Projects: Projects(), Tasks: Tasks()}
}

// Credentials returns one bcrypt credential per seeded user, all with
// DefaultPassword.
func Credentials() ([]domain.Credential, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	users := Users()
	creds := make([]domain.Credential, 0, len(users))
	for _, u := range users {
		creds = append(creds, domain.Credential{
			Email:        u.Email,
			PasswordHash: string(hash),
			CreatedAt:    now,
		})
	}
	return creds, nil
}
