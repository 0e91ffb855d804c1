package services

import (
	"context"
	"strings"

	"taskmanager/internal/auth"
	"taskmanager/internal/domain"
	"taskmanager/internal/errors"
	"taskmanager/internal/repository/sqlite"
	"taskmanager/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	policy        *auth.Policy
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository, policy *auth.Policy) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		policy:        policy,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// ListTasksAll returns every task mapped to its external view
func (t *taskServiceImpl) ListTasksAll(ctx context.Context, caller domain.Caller) (*Result, error) {
	if !t.policy.CanListAll(caller) {
		return nil, errors.NewPermissionError("list all tasks", caller.String())
	}

	dbTasks, err := t.repo.ListAllTasks(ctx)
	if err != nil {
		return nil, err
	}

	return &Result{
		Outcome: OutcomeOK,
		Tasks:   t.viewTasks(dbTasks),
	}, nil
}

// ListTasks runs a filtered task query confined to what the caller may see
func (t *taskServiceImpl) ListTasks(ctx context.Context, caller domain.Caller, params ListParams) (*Result, error) {
	username := strings.TrimSpace(params.Username)

	// A username parameter must reference an existing user.
	if username != "" {
		if _, err := t.repo.GetUser(ctx, username); err != nil {
			return nil, err
		}
	}

	// Only admins may look at another user's tasks.
	if !t.policy.CanListForUsername(caller, username) {
		return nil, errors.NewPermissionError("list tasks", caller.String())
	}

	// Regular callers without an explicit username default to their own tasks.
	if username == "" && !caller.IsAdmin() {
		username = caller.Username
	}

	filter := domain.TaskFilter{}
	if project := strings.TrimSpace(params.Project); project != "" {
		filter.Project = &project
	}
	if name := strings.TrimSpace(params.Name); name != "" {
		filter.Name = &name
	}
	if status := strings.TrimSpace(params.Status); status != "" {
		filter.Status = &status
	}
	if username != "" {
		filter.Username = &username
	}

	// An unconstrained query must go through the explicit list-all
	// operation instead of returning the universe of tasks.
	if filter.IsEmpty() {
		return nil, errors.NewValidationError("at least one of project, name, status or username is required", nil)
	}

	dbTasks, err := t.repo.ListTasks(ctx, t.mapper.TaskFilter.ToDatabase(filter))
	if err != nil {
		return nil, err
	}

	return &Result{
		Outcome: OutcomeOK,
		Tasks:   t.viewTasks(dbTasks),
	}, nil
}

// CreateTask persists a new task from the provided input
func (t *taskServiceImpl) CreateTask(ctx context.Context, caller domain.Caller, input CreateInput) (*Result, error) {
	if !t.policy.CanCreate(caller) {
		return nil, errors.NewPermissionError("create task", caller.String())
	}

	if err := t.taskValidator.ValidateRequiredFields(input.Project, input.Name, input.Description, input.Status); err != nil {
		return nil, errors.NewValidationError("invalid input, required fields: project, name, description, status", err)
	}

	username, err := t.resolveAssignee(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	dbTask := &sqlite.Task{
		Project:     strings.TrimSpace(input.Project),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Status:      strings.TrimSpace(input.Status),
		Username:    username,
	}

	if err := t.repo.InsertTask(ctx, dbTask); err != nil {
		return nil, err
	}

	view := t.mapper.Task.FromDatabase(*dbTask).View()
	return &Result{
		Outcome: OutcomeCreated,
		Task:    &view,
	}, nil
}

// EditTask applies the caller's allowed, provided, non-empty field
// changes. The read-modify-write runs inside a single transaction so
// concurrent edits to the same task serialize at the storage layer.
func (t *taskServiceImpl) EditTask(ctx context.Context, caller domain.Caller, input EditInput) (*Result, error) {
	if input.ID == nil {
		return nil, errors.NewValidationError("missing task id", nil)
	}
	if err := t.taskValidator.ValidateTaskID(*input.ID); err != nil {
		return nil, errors.NewValidationError("invalid task id", err)
	}

	changes := t.providedChanges(input)

	var result *Result
	err := t.repo.InTransaction(ctx, func(repo sqlite.Repository) error {
		dbTask, err := repo.GetTask(ctx, *input.ID)
		if err != nil {
			return err
		}
		task := t.mapper.Task.FromDatabase(*dbTask)

		if !t.policy.CanMutate(caller, task) {
			return errors.NewPermissionError("edit task", caller.String())
		}

		// Drop everything the caller's role may not change; disallowed
		// fields are ignored, not errors.
		allowed := t.policy.AllowedEditFields(caller)
		for field := range changes {
			if !allowed.Contains(field) {
				delete(changes, field)
			}
		}

		if err := t.taskValidator.ValidateFieldLengths(changes); err != nil {
			return errors.NewValidationError("invalid input", err)
		}

		if status, ok := changes[domain.FieldStatus]; ok {
			if err := t.taskValidator.ValidateStatus(status); err != nil {
				return errors.NewValidationError("invalid status", err)
			}
		}

		// A reassignment must reference an existing user.
		if username, ok := changes[domain.FieldUsername]; ok {
			if _, err := repo.GetUser(ctx, username); err != nil {
				return err
			}
		}

		// Nothing applicable to change is an idempotent no-op, not an error.
		if len(changes) == 0 {
			result = &Result{Outcome: OutcomeOK}
			return nil
		}

		for field, value := range changes {
			switch field {
			case domain.FieldProject:
				task.Project = value
			case domain.FieldName:
				task.Name = value
			case domain.FieldDescription:
				task.Description = value
			case domain.FieldStatus:
				task.Status = domain.Status(value)
			case domain.FieldUsername:
				assignee := value
				task.Username = &assignee
			}
		}

		updated := t.mapper.Task.ToDatabase(task)
		if err := repo.UpdateTask(ctx, &updated); err != nil {
			return err
		}

		view := task.View()
		result = &Result{
			Outcome: OutcomeUpdated,
			Task:    &view,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTask removes a task permanently
func (t *taskServiceImpl) DeleteTask(ctx context.Context, caller domain.Caller, id *int64) (*Result, error) {
	if id == nil {
		return nil, errors.NewValidationError("missing task id", nil)
	}
	if err := t.taskValidator.ValidateTaskID(*id); err != nil {
		return nil, errors.NewValidationError("invalid task id", err)
	}

	// The existence check and the delete share one transaction so the
	// row cannot vanish between them.
	err := t.repo.InTransaction(ctx, func(repo sqlite.Repository) error {
		if _, err := repo.GetTask(ctx, *id); err != nil {
			return err
		}

		if !t.policy.CanDelete(caller) {
			return errors.NewPermissionError("delete task", caller.String())
		}

		return repo.DeleteTask(ctx, *id)
	})
	if err != nil {
		return nil, err
	}

	return &Result{Outcome: OutcomeDeleted}, nil
}

// providedChanges collects the provided, non-empty edit fields keyed by
// field name. Empty values count as absent.
func (t *taskServiceImpl) providedChanges(input EditInput) map[string]string {
	changes := make(map[string]string)

	set := func(field string, value *string) {
		if value == nil {
			return
		}
		if trimmed := strings.TrimSpace(*value); trimmed != "" {
			changes[field] = trimmed
		}
	}

	set(domain.FieldProject, input.Project)
	set(domain.FieldName, input.Name)
	set(domain.FieldDescription, input.Description)
	set(domain.FieldStatus, input.Status)
	set(domain.FieldUsername, input.Username)

	return changes
}

// resolveAssignee checks an optional assignee against the user store
func (t *taskServiceImpl) resolveAssignee(ctx context.Context, username *string) (*string, error) {
	if username == nil {
		return nil, nil
	}

	trimmed := strings.TrimSpace(*username)
	if trimmed == "" {
		// An empty assignee means the task starts unassigned.
		return nil, nil
	}

	if _, err := t.repo.GetUser(ctx, trimmed); err != nil {
		return nil, err
	}

	return &trimmed, nil
}

func (t *taskServiceImpl) viewTasks(dbTasks []*sqlite.Task) []domain.TaskView {
	views := make([]domain.TaskView, len(dbTasks))
	for i, task := range t.mapper.Task.FromDatabaseSlice(dbTasks) {
		views[i] = task.View()
	}
	return views
}
