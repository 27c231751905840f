package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cgpe/repopa/internal/api/metrics"
	"github.com/cgpe/repopa/internal/core/domain"
)

// RBAC gates a route on the closed role set. It is the route-level
// enforcement point; the service layer re-checks the same predicate on
// every mutation, so bypassing one layer is not enough.
func RBAC(allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := SessionFromContext(c)

			if err := domain.Authorize(sess, time.Now(), allowed...); err != nil {
				role := "anonymous"
				if sess != nil {
					role = string(sess.Role)
				}
				metrics.AuthzDeniedTotal.WithLabelValues(role).Inc()

				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient permissions"})
			}
			return next(c)
		}
	}
}
