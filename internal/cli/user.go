package cli

import (
	"fmt"

	"taskmanager/internal/auth"
	"taskmanager/internal/domain"
	"taskmanager/internal/repository/sqlite"

	"github.com/spf13/cobra"
)

// newUserCommand creates the user subcommand group. Accounts are
// provisioned here, out-of-band of the HTTP API.
func newUserCommand(root *RootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(newUserAddCommand(root))

	return cmd
}

// newUserAddCommand creates the user add subcommand
func newUserAddCommand(root *RootCommand) *cobra.Command {
	var (
		username string
		email    string
		password string
		role     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || email == "" || password == "" {
				return fmt.Errorf("username, email and password are required")
			}
			if !domain.Role(role).IsValid() {
				return fmt.Errorf("invalid role %q: must be %q or %q", role, domain.RoleRegular, domain.RoleAdmin)
			}

			hash, err := auth.HashPassword(password)
			if err != nil {
				return fmt.Errorf("failed to hash password: %w", err)
			}

			repo, err := root.openRepository()
			if err != nil {
				return err
			}
			defer repo.Close()

			user := &sqlite.User{
				Username:     username,
				Email:        email,
				PasswordHash: hash,
				Role:         role,
			}
			if err := repo.CreateUser(cmd.Context(), user); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "created user %s (%s)\n", username, role)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "unique username (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	cmd.Flags().StringVar(&role, "role", string(domain.RoleRegular), "role: regular or admin")

	return cmd
}
