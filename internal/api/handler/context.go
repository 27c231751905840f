package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cgpe/repopa/internal/api/middleware"
	"github.com/cgpe/repopa/internal/core/domain"
)

// ctxSession extracts the session injected by the Auth middleware and
// fast-fails before any service call: a nil session on a protected route
// means the middleware did not run, which is a wiring error, not a user
// mistake; reject with 401 rather than panic downstream.
func ctxSession(c echo.Context) (*domain.Session, error) {
	sess := middleware.SessionFromContext(c)
	if sess == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return sess, nil
}
