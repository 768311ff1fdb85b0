package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/cli/migrate"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/cli/seed"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/cli/server"
	"github.com/seyidturgut/certifix.ai-sub001/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "certifix",
		Short: "Certifix - certificate issuing and verification",
		Long:  `Certifix issues, verifies and manages training certificates under plan based usage limits.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		worker.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
