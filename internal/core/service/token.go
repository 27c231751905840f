package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cgpe/repopa/internal/core/domain"
)

// tokenTTL is the fixed session lifetime. Sessions are never refreshed; a
// new login is required after expiry.
const tokenTTL = time.Hour

// issueToken mints an HS256 token embedding the session payload with
// exp = now + tokenTTL.
func issueToken(sess *domain.Session, secret string, now time.Time) (string, time.Time, error) {
	expires := now.Add(tokenTTL)
	claims := jwt.MapClaims{
		"sub":    sess.Subject,
		"nombre": sess.Nombre,
		"email":  sess.Email,
		"role":   string(sess.Role),
		"iat":    now.Unix(),
		"exp":    expires.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// parseToken validates a token standalone (no storage lookup) and
// reconstructs the session it encodes. Expired tokens map to
// domain.ErrTokenExpired; anything else invalid maps to domain.ErrInvalidToken.
func parseToken(token, secret string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	role, ok := domain.ParseRole(stringClaim(claims, "role"))
	if !ok {
		return nil, domain.ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Session{
		Subject:   stringClaim(claims, "sub"),
		Nombre:    stringClaim(claims, "nombre"),
		Email:     stringClaim(claims, "email"),
		Role:      role,
		Token:     token,
		ExpiresAt: exp.Time,
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
