package database

import "time"

// ContentRow is one row of the externally editable content table. Keywords and
// the two button columns are stored as comma-separated lists; parsing them is
// the content package's job. Row order (position, then id) is authoritative
// for match resolution.
type ContentRow struct {
	ID       int64 `db:"id"`
	Position int64 `db:"position"`

	Command        string `db:"command"`
	Keywords       string `db:"keywords"`
	ResponseText   string `db:"response_text"`
	MediaURL       string `db:"media_url"`
	ButtonTexts    string `db:"button_texts"`
	ButtonCommands string `db:"button_commands"`
}

// ActionLog is one appended audit record. DisplayName is the name the user
// had at the time of the event, which may be empty.
type ActionLog struct {
	ID        uint      `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	UserID      int64  `db:"user_id"`
	DisplayName string `db:"display_name"`
	Username    string `db:"username"`
	Action      string `db:"action"`
}

// Appointment is one completed appointment form.
type Appointment struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`

	UserID    int64  `db:"user_id"`
	Name      string `db:"name"`
	VisitDate string `db:"visit_date"`
	VisitTime string `db:"visit_time"`
	Symptoms  string `db:"symptoms"`
}
