package domain

import "time"

// Role is the coarse authorization level of a user. Roles never travel
// inside tokens; handlers that care load the user and check here.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

type User struct {
	ID           string
	GoogleID     *string // Google "sub" claim; nil for the bootstrap admin
	Email        string
	Name         string
	AvatarURL    string
	Role         Role
	PasswordHash string // argon2 encoded; only set for the bootstrap admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin is a convenience for authorization checks.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
