package ports

import (
	"context"

	"github.com/cgpe/repopa/internal/core/domain"
)

// AuthService verifies login attempts and mints session tokens.
type AuthService interface {
	// Login authenticates email+password and returns a signed session with a
	// fixed one-hour expiry. Stateless: two calls with the same credentials
	// produce two independently valid tokens.
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	// VerifyToken validates a bearer token standalone (no storage round trip)
	// and reconstructs the session it encodes.
	VerifyToken(token string) (*domain.Session, error)
}

// CreateUserInput carries the fields for an administrator-created account.
type CreateUserInput struct {
	Nombre   string
	Email    string
	Password string
	Role     domain.Role
	// Session of the acting administrator; re-checked by the service.
	Session *domain.Session
}

// UserService is the administrator-facing account management surface.
type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.Credential, error)
	ChangePassword(ctx context.Context, sess *domain.Session, id, newPassword string) error
	DeactivateUser(ctx context.Context, sess *domain.Session, id string) error
	ListUsers(ctx context.Context, sess *domain.Session) ([]*domain.Credential, error)
}
