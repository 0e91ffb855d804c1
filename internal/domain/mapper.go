package domain

import (
	"taskmanager/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:          domainTask.ID,
		Project:     domainTask.Project,
		Name:        domainTask.Name,
		Description: domainTask.Description,
		Status:      string(domainTask.Status),
		Username:    domainTask.Username,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:          dbTask.ID,
		Project:     dbTask.Project,
		Name:        dbTask.Name,
		Description: dbTask.Description,
		Status:      Status(dbTask.Status),
		Username:    dbTask.Username,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	domainTasks := make([]Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTasks[i] = m.FromDatabase(*task)
	}
	return domainTasks
}

// UserMapper handles conversion between domain and database User models.
type UserMapper struct{}

// NewUserMapper creates a new UserMapper instance.
func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToDatabase converts a domain User to a database User.
func (m *UserMapper) ToDatabase(domainUser User) sqlite.User {
	return sqlite.User{
		ID:              domainUser.ID,
		Username:        domainUser.Username,
		Email:           domainUser.Email,
		PasswordHash:    domainUser.PasswordHash,
		Role:            string(domainUser.Role),
		Token:           domainUser.Token,
		TokenExpiration: domainUser.TokenExpiration,
	}
}

// FromDatabase converts a database User to a domain User.
func (m *UserMapper) FromDatabase(dbUser sqlite.User) User {
	return User{
		ID:              dbUser.ID,
		Username:        dbUser.Username,
		Email:           dbUser.Email,
		PasswordHash:    dbUser.PasswordHash,
		Role:            Role(dbUser.Role),
		Token:           dbUser.Token,
		TokenExpiration: dbUser.TokenExpiration,
	}
}

// TaskFilterMapper handles conversion between domain and database TaskFilter.
type TaskFilterMapper struct{}

// NewTaskFilterMapper creates a new TaskFilterMapper instance.
func NewTaskFilterMapper() *TaskFilterMapper {
	return &TaskFilterMapper{}
}

// ToDatabase converts a domain TaskFilter to database filter options.
func (m *TaskFilterMapper) ToDatabase(domainFilter TaskFilter) sqlite.TaskFilter {
	return sqlite.TaskFilter{
		Project:  domainFilter.Project,
		Name:     domainFilter.Name,
		Status:   domainFilter.Status,
		Username: domainFilter.Username,
	}
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task       *TaskMapper
	User       *UserMapper
	TaskFilter *TaskFilterMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task:       NewTaskMapper(),
		User:       NewUserMapper(),
		TaskFilter: NewTaskFilterMapper(),
	}
}
