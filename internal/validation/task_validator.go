package validation

import (
	"taskmanager/internal/domain"
)

// TaskValidator provides validation for task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateRequiredFields validates the required fields of a new task.
// Each of project, name, description and status must be present and
// non-empty; status must additionally be one of the enumerated values.
func (tv *TaskValidator) ValidateRequiredFields(project, name, description, status string) error {
	validationError := NewValidationError()

	required := []struct {
		field string
		value string
		max   int
	}{
		{domain.FieldProject, project, MaxProjectLength},
		{domain.FieldName, name, MaxNameLength},
		{domain.FieldDescription, description, MaxDescriptionLength},
	}

	for _, r := range required {
		if !tv.validator.IsNonEmptyString(r.value) {
			validationError.AddRequiredError(r.field)
			continue
		}
		if !tv.validator.IsValidStringLength(r.value, r.max) {
			validationError.AddInvalidLengthError(r.field, r.value, r.max)
		}
	}

	if !tv.validator.IsNonEmptyString(status) {
		validationError.AddRequiredError(domain.FieldStatus)
	} else if statusErr := tv.ValidateStatus(status); statusErr != nil {
		if statusValidationErr, ok := statusErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, statusValidationErr.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateFieldLengths checks the length limits on whichever of the
// task's text fields appear in the change set, mirroring the limits
// applied on create.
func (tv *TaskValidator) ValidateFieldLengths(changes map[string]string) error {
	limits := []struct {
		field string
		max   int
	}{
		{domain.FieldProject, MaxProjectLength},
		{domain.FieldName, MaxNameLength},
		{domain.FieldDescription, MaxDescriptionLength},
	}

	validationError := NewValidationError()
	for _, l := range limits {
		value, ok := changes[l.field]
		if !ok {
			continue
		}
		if !tv.validator.IsValidStringLength(value, l.max) {
			validationError.AddInvalidLengthError(l.field, value, l.max)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// ValidateStatus validates that a status value is one of the enumerated values
func (tv *TaskValidator) ValidateStatus(status string) error {
	if !tv.validator.IsValidStatus(status) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError(domain.FieldStatus, status,
			"must be one of: "+tv.validator.StatusValues())
		return validationError
	}
	return nil
}

// ValidateUsername validates the shape of a username value
func (tv *TaskValidator) ValidateUsername(username string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(username) {
		validationError.AddRequiredError(domain.FieldUsername)
		return validationError
	}

	if !tv.validator.IsValidStringLength(username, MaxUsernameLength) {
		validationError.AddInvalidLengthError(domain.FieldUsername, username, MaxUsernameLength)
		return validationError
	}

	return nil
}

// ValidateTaskID validates a task ID
func (tv *TaskValidator) ValidateTaskID(id int64) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
