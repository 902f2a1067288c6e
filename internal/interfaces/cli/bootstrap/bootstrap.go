// Package bootstrap loads configuration and opens shared resources for the
// CLI subcommands.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/orris-inc/setracker/internal/infrastructure/config"
	"github.com/orris-inc/setracker/internal/infrastructure/database"
	"github.com/orris-inc/setracker/internal/shared/biztime"
	"github.com/orris-inc/setracker/internal/shared/logger"
)

// Flags are the persistent flags every subcommand accepts.
type Flags struct {
	Env        string
	ConfigPath string
	Verbose    bool
}

// Register binds the shared flags onto cmd.
func (f *Flags) Register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&f.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&f.Verbose, "verbose", "v", false, "Attach source locations to every log line")
}

// Runtime is what a subcommand needs once configuration is loaded.
type Runtime struct {
	Config *config.Config
	Log    logger.Interface
	DB     *gorm.DB
}

// Setup loads config, initialises logging and the business timezone, and
// opens the database.
func Setup(f Flags) (*Runtime, error) {
	env := f.Env
	if v := os.Getenv("ENV"); v != "" {
		env = v
	}

	cfg, err := config.Load(env, f.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, logger.Options{Verbose: f.Verbose}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Runtime{
		Config: cfg,
		Log:    logger.NewLogger().With("env", env),
		DB:     database.Get(),
	}, nil
}

// Close releases the database connection.
func (r *Runtime) Close() {
	if err := database.Close(); err != nil {
		r.Log.Warnw("failed to close database", "error", err)
	}
}
