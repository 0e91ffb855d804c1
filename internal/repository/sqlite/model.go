package sqlite

import "time"

// Task represents a task row.
type Task struct {
	ID          int64
	Project     string
	Name        string
	Description string
	Status      string
	Username    *string // Using pointer to allow NULL values
}

// User represents a user row. Token material is owned by the auth layer.
type User struct {
	ID              int64
	Username        string
	Email           string
	PasswordHash    string
	Role            string
	Token           *string
	TokenExpiration *time.Time
}

// TaskFilter contains the exact-match constraints for a task listing
// query. Nil fields are unconstrained.
type TaskFilter struct {
	Project  *string
	Name     *string
	Status   *string
	Username *string
}
