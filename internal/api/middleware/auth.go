package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cgpe/repopa/internal/core/domain"
)

// sessionKey is the echo context key under which the verified session is stored.
const sessionKey = "session"

// TokenVerifier validates a bearer token standalone and reconstructs the
// session it encodes.
type TokenVerifier interface {
	VerifyToken(token string) (*domain.Session, error)
}

// Auth extracts the bearer token, verifies it, and injects the session into
// the request context. Expired tokens are reported distinctly so the client
// knows a new login is required.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			sess, err := verifier.VerifyToken(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(sessionKey, sess)
			return next(c)
		}
	}
}

// SessionFromContext returns the session stored by Auth, or nil.
func SessionFromContext(c echo.Context) *domain.Session {
	sess, _ := c.Get(sessionKey).(*domain.Session)
	return sess
}
