package domain

import "time"

// Role is the coarse permission level of a user.
type Role string

const (
	RoleRegular Role = "regular"
	RoleAdmin   Role = "admin"
)

// IsValid checks if the role is one of the enumerated values.
func (r Role) IsValid() bool {
	return r == RoleRegular || r == RoleAdmin
}

// User represents an account in the domain model. Credential and token
// material is owned by the identity collaborator; task operations only
// ever read Username and Role.
type User struct {
	ID              int64
	Username        string
	Email           string
	PasswordHash    string
	Role            Role
	Token           *string
	TokenExpiration *time.Time
}

// Caller returns the caller identity this user acts as.
func (u User) Caller() Caller {
	return Caller{Username: u.Username, Role: u.Role}
}
