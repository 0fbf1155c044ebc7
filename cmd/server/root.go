package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/yukikurage/employee-management-api/internal/config"
	"github.com/yukikurage/employee-management-api/internal/logging"
)

var (
	cfg    *config.Config
	logger *slog.Logger
)

// rootCmd serves the API when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "employee-api",
	Short: "Employee management API server",
	Long: `Employee management API: employees, departments, tasks, notes,
attendance and due payments, each scoped to the signed-in account.

Configuration is read from the environment (DB_DRIVER, DB_HOST, REDIS_HOST,
SESSION_SECRET, LOG_LEVEL, ...).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger = logging.Init(logging.NewConfig(cfg.LogLevel, cfg.LogFormat))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}
