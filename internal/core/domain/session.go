package domain

import "time"

// Session is the authenticated identity bundle minted at login. It is
// self-contained: expiry lives in the token itself and in ExpiresAt, no
// server-side session table exists, and a session is never refreshed;
// after expiry a new login is required.
type Session struct {
	Subject   string    `json:"subject"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at instant now.
// The boundary is exclusive: a session is valid strictly before ExpiresAt.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Authorize is the access-guard predicate: allowed iff a session exists,
// is unexpired at now, and its role is in the allowed set. Denial is a
// normal outcome, never retried.
func Authorize(s *Session, now time.Time, allowed ...Role) error {
	if s == nil {
		return ErrPermissionDenied
	}
	if s.Expired(now) {
		return ErrTokenExpired
	}
	for _, r := range allowed {
		if s.Role == r {
			return nil
		}
	}
	return ErrPermissionDenied
}
