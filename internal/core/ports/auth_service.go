package ports

import (
	"context"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
)

// CredentialRepository is the opaque authentication provider: it matches an
// email against its stored secret and nothing more. The core only ever
// consumes the resulting User record.
type CredentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
	// Upsert stores a credential, replacing any existing one for the email.
	// Used by seeding.
	Upsert(ctx context.Context, cred *domain.Credential) error
}

// AuthService implements login, logout and impersonation.
type AuthService interface {
	// Login verifies credentials, records the session identity and returns a
	// signed token for the matched user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Logout clears the session identity and its persisted snapshot.
	Logout(ctx context.Context) error
	// Impersonate replaces the session identity with the target user and
	// returns a token for them. Admin only. There is no return path to the
	// original identity.
	Impersonate(ctx context.Context, actor *domain.User, targetUserID string) (string, *domain.User, error)
}
