package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"tradehub/internal/domain/shared/party"
	"tradehub/internal/infrastructure/auth"
	"tradehub/internal/infrastructure/config"
	"tradehub/internal/shared/constants"
)

var (
	env        string
	configPath string
	partyType  string
	partyID    uint
)

// NewCommand mints a bearer token for local testing with the configured
// secret.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a development access token",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&partyType, "type", "t", "user", "Party type (user, company, admin)")
	cmd.Flags().UintVar(&partyID, "id", 0, "Party ID")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if env == constants.EnvProduction {
		return fmt.Errorf("refusing to issue tokens in production")
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	t, err := party.NewType(partyType)
	if err != nil {
		return err
	}
	viewer, err := party.NewViewer(t, partyID)
	if err != nil {
		return err
	}

	signed, err := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes).Generate(viewer)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
