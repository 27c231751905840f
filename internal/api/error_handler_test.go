package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cgpe/repopa/internal/core/domain"
)

func render(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec
}

// Unknown-user and wrong-password responses must be byte-identical so the
// login endpoint cannot be used to probe which accounts exist.
func TestErrorHandler_CredentialFailuresIndistinguishable(t *testing.T) {
	unknown := render(t, domain.ErrUnknownUser)
	badPass := render(t, domain.ErrInvalidPassword)

	if unknown.Code != http.StatusUnauthorized || badPass.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", unknown.Code, badPass.Code)
	}
	if unknown.Body.String() != badPass.Body.String() {
		t.Fatalf("bodies differ: %q vs %q", unknown.Body.String(), badPass.Body.String())
	}
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrMissingCredentials, http.StatusBadRequest},
		{domain.ErrTokenExpired, http.StatusUnauthorized},
		{domain.ErrInvalidToken, http.StatusUnauthorized},
		{domain.ErrPermissionDenied, http.StatusForbidden},
		{domain.ErrEnteNotFound, http.StatusNotFound},
		{domain.ErrDuplicateEnte, http.StatusConflict},
		{domain.ErrPoderNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrInvalidRole, http.StatusBadRequest},
	}
	for _, tc := range tests {
		rec := render(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	rec := render(t, echo.NewHTTPError(http.StatusNotFound, "Not Found"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	rec := render(t, errors.New("mongo: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "{\"error\":\"internal server error\"}\n" {
		t.Fatalf("internal detail leaked: %q", body)
	}
}
