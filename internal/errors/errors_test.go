package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  string
	}{
		{ErrorTypeValidation, "validation"},
		{ErrorTypeNotFound, "not_found"},
		{ErrorTypePermission, "permission"},
		{ErrorTypeDatabase, "database"},
		{ErrorType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errorType.String())
		})
	}
}

func TestNewValidationError(t *testing.T) {
	cause := fmt.Errorf("field is empty")
	err := NewValidationError("invalid input", cause)

	assert.True(t, err.IsType(ErrorTypeValidation))
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Contains(t, err.Error(), "invalid input")
	assert.Contains(t, err.Error(), "field is empty")
	assert.Equal(t, cause, err.Unwrap())
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "42")

	assert.True(t, err.IsType(ErrorTypeNotFound))
	assert.Equal(t, "task not found: 42", err.Message)

	resource, ok := err.GetContext("resource")
	assert.True(t, ok)
	assert.Equal(t, "task", resource)
}

func TestNewPermissionError(t *testing.T) {
	err := NewPermissionError("delete task", "alice (regular)")

	assert.True(t, err.IsType(ErrorTypePermission))
	assert.Equal(t, "PERMISSION_DENIED", err.Code)

	operation, ok := err.GetContext("operation")
	assert.True(t, ok)
	assert.Equal(t, "delete task", operation)
}

func TestIsErrorType(t *testing.T) {
	err := NewNotFoundError("user", "bob")

	assert.True(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(err, ErrorTypePermission))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeNotFound))
}

func TestIsErrorType_Wrapped(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewDatabaseError("insert task", fmt.Errorf("disk full")))

	assert.True(t, IsErrorType(err, ErrorTypeDatabase))
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(NewValidationError("bad", nil))
	assert.True(t, ok)
	assert.NotNil(t, appErr)

	appErr, ok = AsAppError(fmt.Errorf("plain"))
	assert.False(t, ok)
	assert.Nil(t, appErr)
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation message passes through",
			err:      NewValidationError("missing task id", nil),
			expected: "missing task id",
		},
		{
			name:     "not found message passes through",
			err:      NewNotFoundError("task", "7"),
			expected: "task not found: 7",
		},
		{
			name:     "permission message passes through",
			err:      NewPermissionError("edit task", "bob (regular)"),
			expected: "you don't have the permission to access the requested resource",
		},
		{
			name:     "database surfaces the store's message",
			err:      NewDatabaseError("commit", fmt.Errorf("constraint failed")),
			expected: "constraint failed",
		},
		{
			name:     "plain errors pass through",
			err:      fmt.Errorf("boom"),
			expected: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("task", "1")))
	assert.True(t, ShouldLogError(NewPermissionError("delete task", "alice")))
	assert.True(t, ShouldLogError(NewDatabaseError("query", nil)))
	assert.True(t, ShouldLogError(fmt.Errorf("plain")))
}
