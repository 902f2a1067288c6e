package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/orris-inc/setracker/internal/infrastructure/migration"
	"github.com/orris-inc/setracker/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/orris-inc/setracker/internal/interfaces/http"
)

const shutdownTimeout = 30 * time.Second

var (
	flags       bootstrap.Flags
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the setracker HTTP API with the selected environment configuration.`,
		RunE:  run,
	}

	flags.Register(cmd)
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending migrations before serving")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.Setup(flags)
	if err != nil {
		return err
	}
	defer rt.Close()

	log := rt.Log
	gin.SetMode(mapEnvToGinMode(rt.Config.Server.Mode))
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := migration.NewManager(rt.Config.Database.Driver, log)
	if autoMigrate {
		if err := manager.Up(ctx, rt.DB); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	} else if status, err := manager.Status(ctx, rt.DB); err != nil {
		log.Warnw("failed to check migration status", "error", err)
	} else {
		for _, table := range status.Tables {
			if !table.Present {
				log.Warnw("schema is behind, run `setracker migrate up`", "missing_table", table.Name)
				break
			}
		}
	}

	router, err := httpRouter.NewRouter(rt.DB, rt.Config, log)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}
	defer router.Shutdown()
	router.SetupRoutes()

	if err := router.Run(ctx, shutdownTimeout); err != nil {
		log.Errorw("server stopped with error", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

func mapEnvToGinMode(mode string) string {
	switch mode {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
