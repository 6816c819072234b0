package config

import "time"

// Default values for optional configuration parameters.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	DefaultDBPath = "clinicbot.db"

	DefaultLogRetention = 90 * 24 * time.Hour
)

// DefaultMessages are the built-in user-facing texts. They can be overridden
// in config.yaml; rows in the content table override the start/greeting ones
// at dispatch time.
var DefaultMessages = MessagesConfig{
	AskName:            "👋 Hello! What is your name?",
	GreetingFallback:   "Nice to meet you, {name}!",
	NotFound:           "🛠 I didn't understand that. Try /reset to start over.",
	ContentUnavailable: "😔 Content is temporarily unavailable. Please try again later.",
	NotAuthorized:      "🚫 You are not authorized to use this command.",
	ButtonNotFound:     "Command not found.",

	FormName:     "📋 Let's book an appointment. What is the patient's name?",
	FormDate:     "📅 What date would you like to come in?",
	FormTime:     "🕐 What time works for you?",
	FormSymptoms: "🩺 Briefly describe the symptoms.",
	FormDone:     "✅ Thank you, {name}! Your appointment request has been recorded.",

	NoAppointments:     "No appointment requests recorded yet.",
	AppointmentsHeader: "Recent appointment requests:\n\n",
}

// DefaultFormTriggers start the appointment form from free text.
var DefaultFormTriggers = []string{"book", "schedule", "appointment"}

// DefaultSchedulerTasks enable audit-log retention and SQLite maintenance.
var DefaultSchedulerTasks = map[string]TaskConfig{
	// Schedules are six-field cron expressions (with seconds).
	"log_retention": {
		Enabled:   true,
		Schedule:  "0 0 4 * * *",
		Retention: DefaultLogRetention,
	},
	"sql_maintenance": {
		Enabled:  true,
		Schedule: "0 30 4 * * 0",
	},
}
