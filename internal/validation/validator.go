package validation

import (
	"strings"

	"taskmanager/internal/domain"
)

// Field length limits, matching the column widths of the task store.
const (
	MaxProjectLength     = 80
	MaxNameLength        = 80
	MaxDescriptionLength = 140
	MaxUsernameLength    = 64
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is at most max
func (v *Validator) IsValidStringLength(s string, max int) bool {
	return len(strings.TrimSpace(s)) <= max
}

// IsValidStatus checks if a status string is one of the enumerated values
func (v *Validator) IsValidStatus(status string) bool {
	return domain.Status(status).IsValid()
}

// IsValidTaskID checks if a task ID is valid (positive)
func (v *Validator) IsValidTaskID(id int64) bool {
	return id > 0
}

// StatusValues returns the valid status values for error messages
func (v *Validator) StatusValues() string {
	statuses := domain.Statuses()
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}
	return strings.Join(values, ", ")
}
