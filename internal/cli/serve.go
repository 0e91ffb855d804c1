package cli

import (
	"os/signal"
	"syscall"

	"taskmanager/internal/api"

	"github.com/spf13/cobra"
)

// newServeCommand creates the serve subcommand
func newServeCommand(root *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := root.openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := api.NewServer(root.cfg, root.logger, repo)
			return server.Run(ctx)
		},
	}
}
