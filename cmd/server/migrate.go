package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yukikurage/employee-management-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Connect(cfg); err != nil {
			return err
		}
		if err := database.Migrate(); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		return nil
	},
}
