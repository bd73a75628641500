package auth

import (
	"time"

	"github.com/google/uuid"
)

// Role is a closed enumeration of user roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a domain entity representing a system user.
//
// ResetToken and ResetExpiry are either both set or both unset: they exist
// only while a password reset is pending and are always cleared together.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	ResetToken   *string
	ResetExpiry  *time.Time
	CreatedAt    time.Time
}

// DisplayName is the name used in outbound notifications: the local part of
// the email address.
func (u User) DisplayName() string {
	for i := 0; i < len(u.Email); i++ {
		if u.Email[i] == '@' {
			return u.Email[:i]
		}
	}
	return u.Email
}
