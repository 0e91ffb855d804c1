package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsNonEmptyString("x"))
	assert.True(t, v.IsNonEmptyString("  x  "))
	assert.False(t, v.IsNonEmptyString(""))
	assert.False(t, v.IsNonEmptyString("   "))
	assert.False(t, v.IsNonEmptyString("\t\n"))
}

func TestValidator_IsValidStringLength(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidStringLength("abc", 3))
	assert.True(t, v.IsValidStringLength("  abc  ", 3)) // trimmed before measuring
	assert.False(t, v.IsValidStringLength("abcd", 3))
}

func TestValidator_IsValidStatus(t *testing.T) {
	v := NewValidator()

	assert.True(t, v.IsValidStatus("new"))
	assert.True(t, v.IsValidStatus("canceled"))
	assert.False(t, v.IsValidStatus("closed"))
	assert.False(t, v.IsValidStatus(""))
}

func TestValidator_StatusValues(t *testing.T) {
	v := NewValidator()

	values := v.StatusValues()
	for _, status := range []string{"new", "in_progress", "on_hold", "finished", "canceled"} {
		assert.Contains(t, values, status)
	}
}

func TestValidationError_Collection(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("project")
	ve.AddInvalidValueError("status", "done", "must be one of: new")

	assert.True(t, ve.HasErrors())
	assert.Len(t, ve.Errors, 2)
	assert.Len(t, ve.GetFieldErrors("project"), 1)
	assert.Len(t, ve.GetFieldErrors("status"), 1)
	assert.Empty(t, ve.GetFieldErrors("name"))
	assert.Contains(t, ve.Error(), "multiple validation errors")
}

func TestValidationError_SingleError(t *testing.T) {
	ve := NewValidationError()
	ve.AddInvalidLengthError("description", strings.Repeat("a", 200), 140)

	assert.Contains(t, ve.Error(), "description")
	assert.Contains(t, ve.Error(), "140")
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError()))
	assert.False(t, IsValidationError(assert.AnError))
}
