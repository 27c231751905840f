package domain

import (
	"errors"
	"testing"
	"time"
)

func TestSession_Expired(t *testing.T) {
	exp := time.Date(2026, 3, 15, 13, 0, 0, 0, time.UTC)
	sess := &Session{ExpiresAt: exp}

	if sess.Expired(exp.Add(-time.Second)) {
		t.Fatalf("session should be valid strictly before expiry")
	}
	if !sess.Expired(exp) {
		t.Fatalf("session should be expired exactly at expiry")
	}
	if !sess.Expired(exp.Add(time.Second)) {
		t.Fatalf("session should be expired after expiry")
	}
}

func TestAuthorize(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	valid := func(role Role) *Session {
		return &Session{Subject: "u1", Role: role, ExpiresAt: now.Add(time.Hour)}
	}

	tests := []struct {
		name    string
		sess    *Session
		allowed []Role
		want    error
	}{
		{"admin on admin route", valid(RoleAdmin), []Role{RoleAdmin}, nil},
		{"captura on write route", valid(RoleCaptura), []Role{RoleAdmin, RoleCaptura}, nil},
		{"consulta on read route", valid(RoleConsulta), []Role{RoleAdmin, RoleCaptura, RoleConsulta}, nil},
		{"captura on admin route", valid(RoleCaptura), []Role{RoleAdmin}, ErrPermissionDenied},
		{"consulta on write route", valid(RoleConsulta), []Role{RoleAdmin, RoleCaptura}, ErrPermissionDenied},
		{"consulta on admin route", valid(RoleConsulta), []Role{RoleAdmin}, ErrPermissionDenied},
		{"no session", nil, []Role{RoleConsulta}, ErrPermissionDenied},
		{"empty allowed set", valid(RoleAdmin), nil, ErrPermissionDenied},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.sess, now, tc.allowed...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Authorize() = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAuthorize_ExpiredSession(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	sess := &Session{Subject: "u1", Role: RoleAdmin, ExpiresAt: now.Add(-time.Minute)}

	if err := Authorize(sess, now, RoleAdmin); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseRole(t *testing.T) {
	for _, name := range []string{"ADMIN", "CAPTURA", "CONSULTA"} {
		role, ok := ParseRole(name)
		if !ok || string(role) != name {
			t.Fatalf("ParseRole(%q) = (%v, %v)", name, role, ok)
		}
	}
	if _, ok := ParseRole("SUPERUSER"); ok {
		t.Fatalf("ParseRole should reject names outside the closed set")
	}
	if _, ok := ParseRole("admin"); ok {
		t.Fatalf("ParseRole is case sensitive")
	}
}
