package database

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"
)

type index struct {
	table   string
	name    string
	columns string
}

// secondaryIndexes support owner+date and owner+name lookups. Unique
// constraints live on the model tags.
var secondaryIndexes = []index{
	{"employees", "idx_employees_user_last_name", "user_id, last_name"},
	{"tasks", "idx_tasks_user_due_date", "user_id, due_date"},
	{"tasks", "idx_tasks_user_created_at", "user_id, created_at"},
	{"notes", "idx_notes_user_created_at", "user_id, created_at"},
	{"due_payments", "idx_due_payments_user_pay_date", "user_id, pay_date"},
	{"attendances", "idx_attendances_date", "date"},
}

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range secondaryIndexes {
		if migrator.HasIndex(idx.table, idx.name) {
			slog.Debug("index already exists, skipping", "index", idx.name)
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		slog.Info("created index", "index", idx.name, "table", idx.table, "columns", idx.columns)
	}

	return nil
}

// MigrateDatabase runs all database migrations
func MigrateDatabase(db *gorm.DB) error {
	slog.Info("running database migrations")

	if err := AutoMigrate(db); err != nil {
		return err
	}

	if err := AddIndexes(db); err != nil {
		return fmt.Errorf("failed to add indexes: %w", err)
	}

	slog.Info("database migrations completed")
	return nil
}
