package domain

// Status is the closed set of states a task can be in.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusOnHold     Status = "on_hold"
	StatusFinished   Status = "finished"
	StatusCanceled   Status = "canceled"
)

// Statuses returns every valid task status.
func Statuses() []Status {
	return []Status{StatusNew, StatusInProgress, StatusOnHold, StatusFinished, StatusCanceled}
}

// IsValid checks if the status is one of the enumerated values.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusOnHold, StatusFinished, StatusCanceled:
		return true
	default:
		return false
	}
}

// Field names recognized by task operations. Edits are applied through an
// allow-list of these names, never through reflection.
const (
	FieldProject     = "project"
	FieldName        = "name"
	FieldDescription = "description"
	FieldStatus      = "status"
	FieldUsername    = "username"
)

// Task represents a task in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID          int64
	Project     string
	Name        string
	Description string
	Status      Status
	Username    *string // nil when the task is unassigned
}

// IsValid checks if the task has valid data for persistence.
func (t Task) IsValid() bool {
	return t.Project != "" && t.Name != "" && t.Description != "" && t.Status.IsValid()
}

// Assignee returns the assigned username, or an empty string when the task
// is unassigned.
func (t Task) Assignee() string {
	if t.Username == nil {
		return ""
	}
	return *t.Username
}

// TaskView is the external representation of a task. The task name is not
// part of the view; responses carry only the fields below.
type TaskView struct {
	ID          int64   `json:"id"`
	Project     string  `json:"project"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Username    *string `json:"username"`
}

// View converts the task to its external representation.
func (t Task) View() TaskView {
	return TaskView{
		ID:          t.ID,
		Project:     t.Project,
		Description: t.Description,
		Status:      string(t.Status),
		Username:    t.Username,
	}
}
