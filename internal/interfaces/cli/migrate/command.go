package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orris-inc/setracker/internal/infrastructure/migration"
	"github.com/orris-inc/setracker/internal/interfaces/cli/bootstrap"
)

var (
	flags bootstrap.Flags
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back, or inspect the database schema.`,
	}

	flags.Register(cmd)

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func setup() (*bootstrap.Runtime, *migration.Manager, error) {
	rt, err := bootstrap.Setup(flags)
	if err != nil {
		return nil, nil, err
	}
	return rt, migration.NewManager(rt.Config.Database.Driver, rt.Log), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	rt, manager, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := manager.Up(cmd.Context(), rt.DB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if steps < 1 {
		return fmt.Errorf("--steps must be at least 1")
	}

	rt, manager, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := manager.Down(cmd.Context(), rt.DB, steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	rt, manager, err := setup()
	if err != nil {
		return err
	}
	defer rt.Close()

	status, err := manager.Status(cmd.Context(), rt.DB)
	if err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	PrintStatus(cmd.OutOrStdout(), status)
	return nil
}
