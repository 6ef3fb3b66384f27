package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := newRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand creates the root CLI command with all subcommands registered.
func newRootCommand(logger *slog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pf_backend",
		Short: "Profit First allocation backend",
		Long:  `pf_backend serves the Profit First allocation API and manages its database.`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCommand(logger))
	rootCmd.AddCommand(newMigrateCommand(logger))
	rootCmd.AddCommand(newCadenceCommand())
	rootCmd.AddCommand(newTokenCommand())

	return rootCmd
}
