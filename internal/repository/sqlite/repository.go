package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"taskmanager/internal/errors"
	"taskmanager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Task operations
	InsertTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListAllTasks(ctx context.Context) ([]*Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// User operations
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, username string) (*User, error)
	GetUserByToken(ctx context.Context, token string) (*User, error)
	SaveUserToken(ctx context.Context, user *User) error

	// InTransaction runs fn against a repository scoped to one
	// transaction, so a read-modify-write sequence commits atomically.
	InTransaction(ctx context.Context, fn func(Repository) error) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface. When tx is set
// the repository is scoped to that transaction and every operation runs
// on it; otherwise each mutation opens its own transaction.
type SQLiteRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// A single connection keeps per-connection pragmas in force for
	// every statement and serializes writers.
	db.SetMaxOpenConns(1)

	// Foreign keys are off by default in sqlite
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection. Closing a transaction-scoped
// repository is a no-op; the owning transaction controls its lifetime.
func (r *SQLiteRepository) Close() error {
	if r.tx != nil {
		return nil
	}
	return r.db.Close()
}

// InTransaction runs fn against a repository bound to a single
// transaction. Reads inside fn observe the transaction's snapshot and
// all writes commit together or roll back together. Nested calls join
// the ambient transaction.
func (r *SQLiteRepository) InTransaction(ctx context.Context, fn func(Repository) error) error {
	if r.tx != nil {
		return fn(r)
	}
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		return fn(&SQLiteRepository{db: r.db, tx: tx})
	})
}

// querier returns the surface reads run on: the ambient transaction when
// scoped, the pool otherwise.
func (r *SQLiteRepository) querier() DBTX {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// mutate runs a write on the ambient transaction when scoped, or inside
// its own transaction otherwise.
func (r *SQLiteRepository) mutate(ctx context.Context, fn func(q DBTX) error) error {
	if r.tx != nil {
		return fn(r.tx)
	}
	return WithTransaction(ctx, r.db, func(tx *sql.Tx) error {
		return fn(tx)
	})
}

const taskColumns = "id, project, name, description, status, username"

// InsertTask creates a new task and assigns its generated id
func (r *SQLiteRepository) InsertTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (project, name, description, status, username)
	VALUES (?, ?, ?, ?, ?)`

	return r.mutate(ctx, func(q DBTX) error {
		id, err := ExecuteWithLastInsertID(ctx, q, query, task.Project, task.Name, task.Description, task.Status, nullableString(task.Username))
		if err != nil {
			return err
		}
		task.ID = id
		return nil
	})
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.querier(), query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListAllTasks retrieves every task
func (r *SQLiteRepository) ListAllTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.querier(), query, ScanTasks, "tasks")
}

// ListTasks retrieves tasks matching every constraint in the filter.
// Nil filter fields are unconstrained.
func (r *SQLiteRepository) ListTasks(ctx context.Context, filter TaskFilter) ([]*Task, error) {
	var conditions []string
	var args []interface{}

	if filter.Project != nil {
		conditions = append(conditions, "project = ?")
		args = append(args, *filter.Project)
	}
	if filter.Name != nil {
		conditions = append(conditions, "name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, *filter.Status)
	}
	if filter.Username != nil {
		conditions = append(conditions, "username = ?")
		args = append(args, *filter.Username)
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	return QueryMultiple(ctx, r.querier(), query, ScanTasks, "tasks", args...)
}

// UpdateTask updates an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET project = ?, name = ?, description = ?, status = ?, username = ?
	WHERE id = ?`

	return r.mutate(ctx, func(q DBTX) error {
		return ExecuteWithRowsAffected(ctx, q, query, "task", fmt.Sprintf("%d", task.ID),
			task.Project, task.Name, task.Description, task.Status, nullableString(task.Username), task.ID)
	})
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return r.mutate(ctx, func(q DBTX) error {
		return ExecuteWithRowsAffected(ctx, q, query, "task", fmt.Sprintf("%d", id), id)
	})
}

const userColumns = "id, username, email, password_hash, role, token, token_expiration"

// CreateUser creates a new user and assigns its generated id
func (r *SQLiteRepository) CreateUser(ctx context.Context, user *User) error {
	query := `
	INSERT INTO users (username, email, password_hash, role, token, token_expiration)
	VALUES (?, ?, ?, ?, ?, ?)`

	return r.mutate(ctx, func(q DBTX) error {
		id, err := ExecuteWithLastInsertID(ctx, q, query, user.Username, user.Email, user.PasswordHash, user.Role,
			nullableString(user.Token), FormatTimePtrForDB(user.TokenExpiration))
		if err != nil {
			return err
		}
		user.ID = id
		return nil
	})
}

// GetUser retrieves a user by username
func (r *SQLiteRepository) GetUser(ctx context.Context, username string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	return QuerySingle(ctx, r.querier(), query, ScanUser, "user", username, username)
}

// GetUserByToken retrieves a user by their bearer token
func (r *SQLiteRepository) GetUserByToken(ctx context.Context, token string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE token = ?`
	return QuerySingle(ctx, r.querier(), query, ScanUser, "token", token, token)
}

// SaveUserToken persists a user's token and its expiry
func (r *SQLiteRepository) SaveUserToken(ctx context.Context, user *User) error {
	query := `UPDATE users SET token = ?, token_expiration = ? WHERE id = ?`
	return r.mutate(ctx, func(q DBTX) error {
		return ExecuteWithRowsAffected(ctx, q, query, "user", user.Username,
			nullableString(user.Token), FormatTimePtrForDB(user.TokenExpiration), user.ID)
	})
}

func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
