package seed

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/orris-inc/setracker/internal/application/technology/dto"
	"github.com/orris-inc/setracker/internal/application/technology/usecases"
	"github.com/orris-inc/setracker/internal/infrastructure/persistence/seeds"
	"github.com/orris-inc/setracker/internal/infrastructure/repository"
	"github.com/orris-inc/setracker/internal/interfaces/cli/bootstrap"
	"github.com/orris-inc/setracker/internal/shared/db"
)

var (
	flags       bootstrap.Flags
	catalogFile string
)

// CatalogSeeder is satisfied by usecases.SeedCatalogUseCase.
type CatalogSeeder interface {
	Execute(ctx context.Context, catalog dto.Catalog) (*dto.SeedResult, error)
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
	}

	flags.Register(cmd)

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Create the default technology categories and technologies",
		Long:  `Create technology categories and technologies from a YAML catalog. Entries that already exist are skipped, so the command can be rerun safely.`,
		RunE:  runCatalog,
	}
	catalogCmd.Flags().StringVarP(&catalogFile, "file", "f", "", "Catalog YAML file (default: built-in catalog)")

	cmd.AddCommand(catalogCmd)
	return cmd
}

func runCatalog(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.Setup(flags)
	if err != nil {
		return err
	}
	defer rt.Close()

	seeder := usecases.NewSeedCatalogUseCase(
		repository.NewCategoryRepository(rt.DB),
		repository.NewTechnologyRepository(rt.DB),
		db.NewTransactionManager(rt.DB),
		rt.Log.Named("seed"),
	)
	return SeedCatalog(cmd.Context(), cmd.OutOrStdout(), seeder, catalogFile)
}

// SeedCatalog loads the catalog at path and applies it through seeder.
func SeedCatalog(ctx context.Context, out io.Writer, seeder CatalogSeeder, path string) error {
	catalog, err := seeds.LoadCatalog(path)
	if err != nil {
		return err
	}

	result, err := seeder.Execute(ctx, catalog)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	fmt.Fprintf(out, "Created %d categories and %d technologies (%d already present)\n",
		result.CategoriesCreated, result.TechnologiesCreated, result.Skipped)
	return nil
}
