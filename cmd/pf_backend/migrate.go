package main

import (
	"fmt"
	"log/slog"

	"github.com/SscSPs/profit_first_app/internal/platform/config"
	"github.com/SscSPs/profit_first_app/pkg/database"
	"github.com/spf13/cobra"
)

func newMigrateCommand(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back database migrations",
		Long:      `migrate up applies every pending migration; migrate down rolls back the most recent one.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := parseDirection(args[0])
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			applied, err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, direction)
			if err != nil {
				return err
			}
			if !applied {
				fmt.Fprintln(cmd.OutOrStdout(), "no change")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s done\n", direction)
			return nil
		},
	}
	return cmd
}

func parseDirection(arg string) (database.MigrationDirection, error) {
	switch database.MigrationDirection(arg) {
	case database.MigrateUp:
		return database.MigrateUp, nil
	case database.MigrateDown:
		return database.MigrateDown, nil
	}
	return "", fmt.Errorf("unknown migration direction %q, want up or down", arg)
}
