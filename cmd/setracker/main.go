package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orris-inc/setracker/internal/interfaces/cli/migrate"
	"github.com/orris-inc/setracker/internal/interfaces/cli/seed"
	"github.com/orris-inc/setracker/internal/interfaces/cli/server"
	"github.com/orris-inc/setracker/internal/interfaces/cli/user"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "setracker",
		Short:        "setracker - software engineering ticket tracker",
		Long:         `setracker tracks bug reports, feature requests and tasks across projects and reports on team and technology workload.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		user.NewCommand(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
