package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// genericLoginFailure is the single message presented for both unknown-user
// and wrong-password failures. The two stay distinct internally; the bytes
// sent to the client are identical so accounts cannot be enumerated.
const genericLoginFailure = "incorrect credentials"

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Collapses credential failures to one indistinguishable message.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, "email and password are required"
	case errors.Is(err, domain.ErrUnknownUser), errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized, genericLoginFailure
	case errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "token expired"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, "insufficient permissions"
	case errors.Is(err, domain.ErrEnteNotFound):
		return http.StatusNotFound, "ente not found"
	case errors.Is(err, domain.ErrPoderNotFound):
		return http.StatusNotFound, "poderes not found"
	case errors.Is(err, domain.ErrDuplicateEnte):
		return http.StatusConflict, "ente already exists"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
