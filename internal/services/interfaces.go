package services

import (
	"context"

	"taskmanager/internal/domain"
)

// Outcome is a tag describing how an operation concluded successfully.
// Failures are reported through kinded errors instead.
type Outcome string

const (
	OutcomeOK      Outcome = "ok"
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
	OutcomeDeleted Outcome = "deleted"
)

// Result pairs an operation's payload with its outcome. Exactly one of
// Task and Tasks is set for operations that return data; both stay nil
// for deletions and no-op edits.
type Result struct {
	Outcome Outcome
	Task    *domain.TaskView
	Tasks   []domain.TaskView
}

// ListParams is the recognized parameter set for filtered task listing.
// Empty strings mean the parameter was not provided.
type ListParams struct {
	Project  string
	Name     string
	Status   string
	Username string
}

// CreateInput carries the fields accepted when creating a task. Username
// is optional; a task may be unassigned.
type CreateInput struct {
	Project     string
	Name        string
	Description string
	Status      string
	Username    *string
}

// EditInput carries the fields accepted when editing a task. Nil means
// the field was not provided; provided empty values are ignored.
type EditInput struct {
	ID          *int64
	Project     *string
	Name        *string
	Description *string
	Status      *string
	Username    *string
}

// TaskService orchestrates task operations: it validates input shape,
// consults the authorization policy, calls the repository and maps each
// outcome to a result. It is the only component with branching logic.
type TaskService interface {
	// ListTasksAll returns every task. Admin only.
	ListTasksAll(ctx context.Context, caller domain.Caller) (*Result, error)

	// ListTasks returns the tasks matching the given parameters. Regular
	// callers are confined to their own tasks.
	ListTasks(ctx context.Context, caller domain.Caller, params ListParams) (*Result, error)

	// CreateTask persists a new task. Admin only.
	CreateTask(ctx context.Context, caller domain.Caller, input CreateInput) (*Result, error)

	// EditTask applies the caller's allowed field changes to a task.
	EditTask(ctx context.Context, caller domain.Caller, input EditInput) (*Result, error)

	// DeleteTask removes a task permanently. Admin only.
	DeleteTask(ctx context.Context, caller domain.Caller, id *int64) (*Result, error)
}
