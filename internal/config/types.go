// Package config manages application configuration from config.yaml,
// BOT_* environment variables, and default values.
package config

import "time"

// BotInfo holds the bot identity retrieved from the transport at startup.
type BotInfo struct {
	ID       int64
	Username string
}

// Config defines the application configuration. Values can be set in
// config.yaml or via environment variables prefixed with BOT_
// (e.g., BOT_TELEGRAM_TOKEN).
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Messages  MessagesConfig  `mapstructure:"messages"`
	Form      FormConfig      `mapstructure:"form"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// TelegramConfig holds transport credentials and runtime bot identity.
type TelegramConfig struct {
	Token       string `mapstructure:"token"        validate:"required"`
	AdminUserID int64  `mapstructure:"admin_user_id" validate:"required,gt=0"`

	// BotInfo is populated at startup via GetMe, not from configuration.
	BotInfo BotInfo `mapstructure:"-"`
}

// DatabaseConfig locates the SQLite file holding the content table, the
// audit log, and saved appointments.
type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// MessagesConfig holds all fixed user-facing texts. Content-table rows take
// precedence where one exists (start, reset, greeting); these are the
// fallbacks and the form prompts.
type MessagesConfig struct {
	AskName            string `mapstructure:"ask_name"            validate:"required"`
	GreetingFallback   string `mapstructure:"greeting_fallback"   validate:"required"`
	NotFound           string `mapstructure:"not_found"           validate:"required"`
	ContentUnavailable string `mapstructure:"content_unavailable" validate:"required"`
	NotAuthorized      string `mapstructure:"not_authorized"      validate:"required"`
	ButtonNotFound     string `mapstructure:"button_not_found"    validate:"required"`

	FormName     string `mapstructure:"form_name"     validate:"required"`
	FormDate     string `mapstructure:"form_date"     validate:"required"`
	FormTime     string `mapstructure:"form_time"     validate:"required"`
	FormSymptoms string `mapstructure:"form_symptoms" validate:"required"`
	FormDone     string `mapstructure:"form_done"     validate:"required"`

	NoAppointments     string `mapstructure:"no_appointments"     validate:"required"`
	AppointmentsHeader string `mapstructure:"appointments_header" validate:"required"`
}

// FormConfig controls appointment form initiation.
type FormConfig struct {
	// Triggers are lowercase keywords that start the form when they appear
	// in free text from a user with no form in progress.
	Triggers []string `mapstructure:"triggers"`
}

// SchedulerConfig maps task names to their schedules.
type SchedulerConfig struct {
	Tasks map[string]TaskConfig `mapstructure:"tasks"`
}

// TaskConfig configures one scheduled task.
type TaskConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"`

	// Retention applies to the log_retention task only.
	Retention time.Duration `mapstructure:"retention"`
}
