package auth

import (
	"taskmanager/internal/domain"
)

// FieldSet is a set of task field names a caller may change.
type FieldSet map[string]struct{}

// Contains reports whether the field is in the set.
func (s FieldSet) Contains(field string) bool {
	_, ok := s[field]
	return ok
}

// editableFields maps each role to the task fields it may change on a
// task it is allowed to mutate.
var editableFields = map[domain.Role][]string{
	domain.RoleAdmin: {
		domain.FieldProject,
		domain.FieldName,
		domain.FieldDescription,
		domain.FieldStatus,
		domain.FieldUsername,
	},
	domain.RoleRegular: {
		domain.FieldStatus,
	},
}

// Policy makes every authorization decision for task operations. All
// methods are pure functions of the caller and, where relevant, the task.
type Policy struct{}

// NewPolicy creates a new Policy instance.
func NewPolicy() *Policy {
	return &Policy{}
}

// CanListAll reports whether the caller may list every task.
func (p *Policy) CanListAll(caller domain.Caller) bool {
	return caller.IsAdmin()
}

// CanListForUsername reports whether the caller may list tasks assigned
// to targetUsername. An empty target means the caller's own tasks.
func (p *Policy) CanListForUsername(caller domain.Caller, targetUsername string) bool {
	if caller.IsAdmin() {
		return true
	}
	return targetUsername == "" || targetUsername == caller.Username
}

// CanCreate reports whether the caller may create tasks.
func (p *Policy) CanCreate(caller domain.Caller) bool {
	return caller.IsAdmin()
}

// CanMutate reports whether the caller may change the given task.
func (p *Policy) CanMutate(caller domain.Caller, task domain.Task) bool {
	if caller.IsAdmin() {
		return true
	}
	return task.Assignee() == caller.Username
}

// CanDelete reports whether the caller may delete tasks. Deletion is
// admin-only, stricter than the ownership rule for edits.
func (p *Policy) CanDelete(caller domain.Caller) bool {
	return caller.IsAdmin()
}

// AllowedEditFields returns the set of task fields the caller may change
// on a task it can mutate.
func (p *Policy) AllowedEditFields(caller domain.Caller) FieldSet {
	fields := editableFields[caller.Role]
	set := make(FieldSet, len(fields))
	for _, field := range fields {
		set[field] = struct{}{}
	}
	return set
}
