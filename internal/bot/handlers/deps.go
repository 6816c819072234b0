package handlers

import (
	"log/slog"

	"clinicbot/internal/audit"
	"clinicbot/internal/config"
	"clinicbot/internal/content"
	"clinicbot/internal/database"
	"clinicbot/internal/state"
)

// HandlerDeps provides dependencies for Telegram handlers.
type HandlerDeps struct {
	Logger   *slog.Logger
	Config   *config.Config
	Store    database.Store
	Resolver *content.Resolver
	Tracker  *state.Tracker
	Audit    *audit.Recorder
}
