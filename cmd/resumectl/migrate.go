package main

import (
	"github.com/spf13/cobra"

	"resume-evaluator-api/internal/infrastructure/db/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		if err = postgres.Migrate(cmd.Context(), e.db); err != nil {
			return err
		}
		e.logger.Info("schema applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
