package cli

import (
	"log/slog"

	"taskmanager/internal/config"
	"taskmanager/internal/repository/sqlite"

	"github.com/spf13/cobra"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the root cobra command with all subcommands attached
func NewRootCommand(cfg *config.Config, logger *slog.Logger) *RootCommand {
	root := &RootCommand{
		cfg:    cfg,
		logger: logger,
	}

	root.cmd = &cobra.Command{
		Use:   "taskman",
		Short: "Token-authenticated task tracking service",
		Long: `Task Manager (taskman) serves a token-authenticated HTTP API for
tracking tasks across projects.

Admins create, list, edit and delete any task; regular users list their
own tasks and move them between statuses. Accounts are provisioned from
this CLI, not over the API.

EXAMPLES:
  taskman serve
  taskman user add --username alice --email alice@example.com --role regular

Configuration is read from TASKMANAGER_* environment variables
(TASKMANAGER_HTTP_ADDR, TASKMANAGER_DB_PATH, TASKMANAGER_LOG_LEVEL, ...).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.cmd.AddCommand(newServeCommand(root))
	root.cmd.AddCommand(newUserCommand(root))

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// openRepository opens the configured sqlite store, running migrations
func (r *RootCommand) openRepository() (sqlite.Repository, error) {
	return sqlite.New(r.cfg.Database.Path)
}
