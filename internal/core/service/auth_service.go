package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

// AuthService implements login and standalone token verification. It is
// stateless across calls: the only side effect of Login is the
// credential-verification read.
type AuthService struct {
	repo      ports.AuthRepository
	roles     ports.RoleRepository
	jwtSecret string
	log       zerolog.Logger
	// now is swappable for expiry tests.
	now func() time.Time
}

func NewAuthService(repo ports.AuthRepository, roles ports.RoleRepository, jwtSecret string, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:      repo,
		roles:     roles,
		jwtSecret: jwtSecret,
		log:       log,
		now:       time.Now,
	}
}

// Login verifies email+password and mints a session with a fixed one-hour
// expiry. Unknown-user and wrong-password stay distinct here for
// diagnostics; the HTTP layer collapses them into one client message.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}

	cred, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownUser) {
			s.log.Info().Str("email", email).Msg("login attempt for unknown account")
		} else {
			s.log.Error().Err(err).Msg("credential lookup failed")
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		s.log.Info().Str("email", email).Msg("login attempt with wrong password")
		return nil, domain.ErrInvalidPassword
	}

	role := s.resolveRole(ctx, cred)

	sess := &domain.Session{
		Subject: cred.ID,
		Nombre:  cred.Nombre,
		Email:   cred.Email,
		Role:    role,
	}

	now := s.now().UTC()
	token, expires, err := issueToken(sess, s.jwtSecret, now)
	if err != nil {
		return nil, err
	}
	sess.Token = token
	sess.ExpiresAt = expires

	s.log.Info().Str("subject", cred.ID).Str("role", string(role)).Msg("login succeeded")

	return sess, nil
}

// resolveRole maps the credential's role reference onto the closed role
// set. A dangling reference is not a login failure: it falls back to
// CONSULTA, the least-privileged role.
func (s *AuthService) resolveRole(ctx context.Context, cred *domain.Credential) domain.Role {
	name, err := s.roles.FindByID(ctx, cred.RolID)
	if err != nil {
		s.log.Warn().Str("subject", cred.ID).Str("rol_id", cred.RolID).
			Msg("role reference unresolved, defaulting to CONSULTA")
		return domain.RoleConsulta
	}
	role, ok := domain.ParseRole(name)
	if !ok {
		s.log.Warn().Str("subject", cred.ID).Str("rol", name).
			Msg("role outside closed set, defaulting to CONSULTA")
		return domain.RoleConsulta
	}
	return role
}

// VerifyToken validates a bearer token without any storage round trip.
func (s *AuthService) VerifyToken(token string) (*domain.Session, error) {
	return parseToken(token, s.jwtSecret)
}
