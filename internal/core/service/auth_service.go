package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/PUNEET-EMM/Project-Management/internal/core/domain"
	"github.com/PUNEET-EMM/Project-Management/internal/core/permission"
	"github.com/PUNEET-EMM/Project-Management/internal/core/ports"
	"github.com/PUNEET-EMM/Project-Management/internal/core/session"
	"github.com/PUNEET-EMM/Project-Management/internal/core/store"
)

// AuthService implements login, logout and impersonation. Credential checks
// go through the external provider; the service only consumes the matched
// User record.
type AuthService struct {
	creds     ports.CredentialRepository
	store     *store.Store
	session   *session.Manager
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(creds ports.CredentialRepository, st *store.Store, sess *session.Manager, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		creds:     creds,
		store:     st,
		session:   sess,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	cred, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, ok := s.store.UserByEmail(email)
	if !ok {
		return "", nil, domain.ErrUserNotFound
	}

	if err := s.session.Login(ctx, &user); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(&user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("user logged in")
	return token, &user, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}

// Impersonate swaps the session identity for the target user and issues a
// token for them. Only a role manager (Admin) may do this. The previous
// identity is not recorded anywhere; the warn log is the only trace.
func (s *AuthService) Impersonate(ctx context.Context, actor *domain.User, targetUserID string) (string, *domain.User, error) {
	if actor == nil || !permission.CanManageRoles(actor.Role) {
		return "", nil, domain.ErrForbidden
	}

	target, ok := s.store.UserByID(targetUserID)
	if !ok {
		return "", nil, domain.ErrUserNotFound
	}

	if err := s.session.Impersonate(ctx, &target); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(&target)
	if err != nil {
		return "", nil, err
	}

	s.log.Warn().
		Str("admin_id", actor.ID).
		Str("target_id", target.ID).
		Str("target_role", string(target.Role)).
		Msg("impersonation started")
	return token, &target, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
