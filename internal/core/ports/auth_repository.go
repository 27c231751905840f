package ports

import (
	"context"

	"github.com/cgpe/repopa/internal/core/domain"
)

// AuthRepository defines persistence for login-capable accounts.
type AuthRepository interface {
	// FindActiveByEmail returns the active credential with the given email,
	// or domain.ErrUnknownUser when no active account matches.
	FindActiveByEmail(ctx context.Context, email string) (*domain.Credential, error)
	Create(ctx context.Context, cred *domain.Credential) (*domain.Credential, error)
	// UpdatePasswordHash replaces the stored hash for one credential.
	UpdatePasswordHash(ctx context.Context, id, hash string) error
	// Deactivate flips the activo flag; credentials are never physically removed.
	Deactivate(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Credential, error)
}

// RoleRepository resolves role references stored on credentials.
type RoleRepository interface {
	// FindByID returns the role name for a role id, or domain.ErrInvalidRole
	// when the reference is dangling.
	FindByID(ctx context.Context, id string) (string, error)
}
