package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cgpe/repopa/internal/core/domain"
)

type stubAuthService struct {
	sess *domain.Session
	err  error
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sess, nil
}

func (s *stubAuthService) VerifyToken(token string) (*domain.Session, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sess, nil
}

func postLogin(t *testing.T, svc *stubAuthService, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(svc)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	sess := &domain.Session{
		Subject:   "u1",
		Nombre:    "Ana",
		Email:     "ana@x.com",
		Role:      domain.RoleAdmin,
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
	}
	rec := postLogin(t, &stubAuthService{sess: sess}, `{"email":"ana@x.com","password":"pw"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Role != "ADMIN" {
		t.Fatalf("expected role ADMIN, got %q", resp.Role)
	}
	if resp.Token == "" {
		t.Fatalf("expected token in login response")
	}
}

func TestAuthHandler_Login_FailuresReachErrorHandler(t *testing.T) {
	for _, err := range []error{domain.ErrUnknownUser, domain.ErrInvalidPassword} {
		rec := postLogin(t, &stubAuthService{err: err}, `{"email":"a@x.com","password":"pw"}`)
		// Echo's default handler renders 500 for bare errors; the router
		// installs the domain-aware handler that maps both to an identical
		// 401. Here we only assert the handler returns the raw error.
		if rec.Code == http.StatusOK {
			t.Fatalf("login should not succeed for %v", err)
		}
	}
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	rec := postLogin(t, &stubAuthService{}, `{"email":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("session", &domain.Session{
		Subject:   "u1",
		Email:     "ana@x.com",
		Role:      domain.RoleConsulta,
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(time.Hour),
	})

	h := NewAuthHandler(&stubAuthService{})
	if err := h.Me(c); err != nil {
		t.Fatalf("Me failed: %v", err)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Token != "" {
		t.Fatalf("token must not be echoed back")
	}
	if resp.Role != "CONSULTA" {
		t.Fatalf("expected role CONSULTA, got %q", resp.Role)
	}
}

func TestAuthHandler_Me_NoSession(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewAuthHandler(&stubAuthService{})
	err := h.Me(c)
	if err == nil {
		t.Fatalf("expected error without session")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	_ = rec
}
