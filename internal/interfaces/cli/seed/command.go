package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tradehub/internal/infrastructure/config"
	"tradehub/internal/infrastructure/database"
	"tradehub/internal/infrastructure/seed"
	"tradehub/internal/shared/constants"
	"tradehub/internal/shared/logger"
)

var (
	env        string
	configPath string
	file       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load development identity fixtures",
		Long:  `Upsert users and companies from a YAML fixtures file into the local profile tables.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&file, "file", "f", "configs/fixtures.yaml", "Fixtures file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if env == constants.EnvProduction {
		return fmt.Errorf("refusing to seed fixtures in production")
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open fixtures: %w", err)
	}
	defer f.Close()

	fixtures, err := seed.Parse(f)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := seed.Apply(cmd.Context(), database.Get(), fixtures); err != nil {
		return err
	}

	log.Infow("fixtures loaded",
		"file", file,
		"users", len(fixtures.Users),
		"companies", len(fixtures.Companies))
	return nil
}
