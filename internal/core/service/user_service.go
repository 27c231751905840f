package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

// UserService implements administrator-only account management. Every
// method re-checks the acting session even though the route layer already
// gates on role: the route check alone is not the security boundary.
type UserService struct {
	repo  ports.AuthRepository
	roles map[domain.Role]string
	log   zerolog.Logger
	now   func() time.Time
}

// NewUserService builds a UserService. roleIDs maps each role onto its
// stored rol_id so created credentials reference the seeded roles table.
func NewUserService(repo ports.AuthRepository, roleIDs map[domain.Role]string, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, roles: roleIDs, log: log, now: time.Now}
}

func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.Credential, error) {
	if err := domain.Authorize(in.Session, s.now(), domain.RoleAdmin); err != nil {
		return nil, err
	}
	if in.Nombre == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingCredentials
	}
	rolID, ok := s.roles[in.Role]
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	cred := &domain.Credential{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		RolID:        rolID,
		Activo:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, cred)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", in.Email).Str("role", string(in.Role)).
		Str("actor", in.Session.Subject).Msg("user created")
	return created, nil
}

func (s *UserService) ChangePassword(ctx context.Context, sess *domain.Session, id, newPassword string) error {
	if err := domain.Authorize(sess, s.now(), domain.RoleAdmin); err != nil {
		return err
	}
	if newPassword == "" {
		return domain.ErrMissingCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(ctx, id, string(hash))
}

func (s *UserService) DeactivateUser(ctx context.Context, sess *domain.Session, id string) error {
	if err := domain.Authorize(sess, s.now(), domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("id", id).Str("actor", sess.Subject).Msg("user deactivated")
	return nil
}

func (s *UserService) ListUsers(ctx context.Context, sess *domain.Session) ([]*domain.Credential, error) {
	if err := domain.Authorize(sess, s.now(), domain.RoleAdmin); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}
