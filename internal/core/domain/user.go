package domain

import "time"

// Role is the closed set of permission levels. The set is fixed at deploy
// time; there is no runtime role administration.
type Role string

const (
	// RoleAdmin has full read/write access, including user management and deletes.
	RoleAdmin Role = "ADMIN"
	// RoleCaptura may create and update domain records; deletes are denied.
	RoleCaptura Role = "CAPTURA"
	// RoleConsulta is read-only. It is also the fail-safe fallback when a
	// credential's role reference cannot be resolved.
	RoleConsulta Role = "CONSULTA"
)

// ParseRole maps a stored role name onto the closed enumeration.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleCaptura, RoleConsulta:
		return Role(s), true
	}
	return "", false
}

// Credential models one login-capable account. The password hash is never
// serialized; deactivation happens via the Activo flag, the authentication
// flow never removes rows.
type Credential struct {
	ID           string    `json:"id"`
	Nombre       string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RolID        string    `json:"rol_id"`
	Activo       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
