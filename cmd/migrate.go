package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema and seed the species catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := setup(cmd.Context())
		if err != nil {
			slog.Error("Migration failed", slog.String("type", "db"), slog.Any("error", err))
			return err
		}
		defer db.Close()

		slog.Info("Migration completed successfully", slog.String("type", "db"), slog.String("driver", db.Driver()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
