package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// LoadConfig loads and validates configuration from, in order of precedence:
// BOT_* environment variables, the given YAML file, and built-in defaults.
// A missing config file is not an error; all required values can come from
// the environment.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("BOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		// Missing file is fine, defaults and env cover it.
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.Form.Triggers) == 0 {
		cfg.Form.Triggers = DefaultFormTriggers
	}
	for i, trigger := range cfg.Form.Triggers {
		cfg.Form.Triggers[i] = strings.ToLower(strings.TrimSpace(trigger))
	}

	if len(cfg.Scheduler.Tasks) == 0 {
		cfg.Scheduler.Tasks = DefaultSchedulerTasks
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.json", DefaultLogJSON)

	// Empty defaults register the keys so environment-only values are seen
	// by Unmarshal.
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.admin_user_id", 0)

	v.SetDefault("database.path", DefaultDBPath)

	v.SetDefault("messages.ask_name", DefaultMessages.AskName)
	v.SetDefault("messages.greeting_fallback", DefaultMessages.GreetingFallback)
	v.SetDefault("messages.not_found", DefaultMessages.NotFound)
	v.SetDefault("messages.content_unavailable", DefaultMessages.ContentUnavailable)
	v.SetDefault("messages.not_authorized", DefaultMessages.NotAuthorized)
	v.SetDefault("messages.button_not_found", DefaultMessages.ButtonNotFound)
	v.SetDefault("messages.form_name", DefaultMessages.FormName)
	v.SetDefault("messages.form_date", DefaultMessages.FormDate)
	v.SetDefault("messages.form_time", DefaultMessages.FormTime)
	v.SetDefault("messages.form_symptoms", DefaultMessages.FormSymptoms)
	v.SetDefault("messages.form_done", DefaultMessages.FormDone)
	v.SetDefault("messages.no_appointments", DefaultMessages.NoAppointments)
	v.SetDefault("messages.appointments_header", DefaultMessages.AppointmentsHeader)

	v.SetDefault("form.triggers", DefaultFormTriggers)
}
