package domain

import "errors"

// Authentication errors. ErrUnknownUser and ErrInvalidPassword are kept
// distinct for diagnostics; the HTTP layer presents both as the same
// generic message so callers cannot enumerate accounts.
var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrUnknownUser        = errors.New("unknown user")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
)

// Authorization.
var ErrPermissionDenied = errors.New("permission denied")

// Domain records.
var (
	ErrEnteNotFound  = errors.New("ente not found")
	ErrDuplicateEnte = errors.New("ente already exists")
	ErrPoderNotFound = errors.New("poderes not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrUserExists    = errors.New("user already exists")
	ErrInvalidRole   = errors.New("invalid role")
)
