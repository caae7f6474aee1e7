package main

import (
	"os"

	"github.com/spf13/cobra"

	"tradehub/internal/interfaces/cli/migrate"
	"tradehub/internal/interfaces/cli/seed"
	"tradehub/internal/interfaces/cli/server"
	"tradehub/internal/interfaces/cli/token"
	"tradehub/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "tradehub",
		Short:   "tradehub - user/company messaging and support inbox",
		Version: version.Current(),
		Long:    `tradehub serves direct conversations between users and companies, support tickets, and the unified inbox that merges them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
