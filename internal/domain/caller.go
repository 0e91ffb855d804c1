package domain

// Caller is the identity resolved from a request's bearer token. It is a
// transient per-request value used only for authorization decisions.
type Caller struct {
	Username string
	Role     Role
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// String returns the caller identity for log messages.
func (c Caller) String() string {
	return c.Username + " (" + string(c.Role) + ")"
}
