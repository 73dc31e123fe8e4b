package main

import (
	"os"

	"github.com/spf13/cobra"

	"siloops/internal/interfaces/cli/migrate"
	"siloops/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "siloops",
		Short: "siloops - grain silo operations service",
		Long:  `siloops is the grain silo operations backend with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
