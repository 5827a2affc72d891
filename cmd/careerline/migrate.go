package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"careerline.app/studio/core/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		database, err := db.New(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()

		applied, err := database.Migrate(ctx)
		if err != nil {
			return err
		}

		slog.InfoContext(ctx, "migrations applied", "count", applied)
		fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
