// Package tasks implements the scheduled maintenance tasks: audit-log
// retention and SQLite upkeep.
package tasks

import (
	"log/slog"

	"clinicbot/internal/config"
	"clinicbot/internal/database"
)

// TaskDeps contains the dependencies available to scheduled tasks.
type TaskDeps struct {
	Logger *slog.Logger
	Store  database.Store
	Config *config.Config
}
