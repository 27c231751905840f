package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cgpe/repopa/internal/api/metrics"
	"github.com/cgpe/repopa/internal/core/domain"
	"github.com/cgpe/repopa/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Subject   string    `json:"subject"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		Subject:   s.Subject,
		Nombre:    s.Nombre,
		Email:     s.Email,
		Role:      string(s.Role),
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt.UTC(),
	}
}

// Login authenticates a user and returns the session bundle with a signed
// one-hour token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	sess, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		// The error handler collapses unknown-user and wrong-password into
		// one identical client message.
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toSessionResponse(sess))
}

// Me returns the session encoded in the presented token. Pure read: the UI
// layer uses it to decide which controls to render.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := ctxSession(c)
	if err != nil {
		return err
	}
	resp := toSessionResponse(sess)
	resp.Token = "" // never echo the token back
	return c.JSON(http.StatusOK, resp)
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return "missing"
	case errors.Is(err, domain.ErrUnknownUser):
		return "unknown_user"
	case errors.Is(err, domain.ErrInvalidPassword):
		return "bad_password"
	default:
		return "error"
	}
}
