package database_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"

	"clinicbot/internal/database"
)

// openTestStore opens a migrated throwaway SQLite file and returns the raw
// connection for seeding plus the Store under test.
func openTestStore(t *testing.T) (*sqlx.DB, database.Store) {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "clinicbot.db"))
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })

	return db, database.NewStore(db, nil)
}

func TestGetContentRowsOrderedByPosition(t *testing.T) {
	t.Parallel()

	db, store := openTestStore(t)

	// Seed out of position order; equal positions fall back to id order.
	seed := `INSERT INTO content (position, command, keywords, response_text) VALUES (?, ?, ?, ?);`
	for _, row := range [][]any{
		{2, "faq", "", "questions"},
		{1, "greeting", "", "hello"},
		{1, "headache", "headache", "describe since when"},
	} {
		if _, err := db.Exec(seed, row...); err != nil {
			t.Fatalf("seed content: %v", err)
		}
	}

	rows, err := store.GetContentRows(context.Background())
	if err != nil {
		t.Fatalf("GetContentRows: %v", err)
	}

	var commands []string
	for _, r := range rows {
		commands = append(commands, r.Command)
	}
	want := []string{"greeting", "headache", "faq"}
	if len(commands) != len(want) {
		t.Fatalf("commands = %v, want %v", commands, want)
	}
	for i := range want {
		if commands[i] != want[i] {
			t.Fatalf("commands = %v, want %v", commands, want)
		}
	}
}

func TestAppendAndPruneActionLogs(t *testing.T) {
	t.Parallel()

	db, store := openTestStore(t)
	ctx := context.Background()

	old := &database.ActionLog{
		CreatedAt: time.Now().UTC().Add(-48 * time.Hour),
		UserID:    7,
		Username:  "anna_p",
		Action:    "/start",
	}
	recent := &database.ActionLog{
		UserID:      7,
		DisplayName: "Anna",
		Username:    "anna_p",
		Action:      "set_name",
	}
	if err := store.AppendActionLog(ctx, old); err != nil {
		t.Fatalf("AppendActionLog: %v", err)
	}
	if err := store.AppendActionLog(ctx, recent); err != nil {
		t.Fatalf("AppendActionLog: %v", err)
	}
	if old.ID == 0 || recent.ID == 0 || recent.ID <= old.ID {
		t.Errorf("ids = (%d, %d), want increasing non-zero insert ids", old.ID, recent.ID)
	}

	var got []struct {
		UserID int64  `db:"user_id"`
		Action string `db:"action"`
	}
	if err := db.Select(&got, `SELECT user_id, action FROM action_logs ORDER BY id;`); err != nil {
		t.Fatalf("read back action_logs: %v", err)
	}
	if len(got) != 2 || got[0].Action != "/start" || got[1].Action != "set_name" {
		t.Fatalf("action_logs = %+v, want [/start set_name] for user 7", got)
	}

	deleted, err := store.PruneActionLogs(ctx, time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("PruneActionLogs: %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}

func TestSaveAndListAppointments(t *testing.T) {
	t.Parallel()

	_, store := openTestStore(t)
	ctx := context.Background()

	appt := &database.Appointment{
		ID:        "11111111-2222-3333-4444-555555555555",
		UserID:    7,
		Name:      "Anna",
		VisitDate: "2026-09-01",
		VisitTime: "14:30",
		Symptoms:  "headache since monday",
	}
	if err := store.SaveAppointment(ctx, appt); err != nil {
		t.Fatalf("SaveAppointment: %v", err)
	}

	appts, err := store.ListAppointments(ctx, 10)
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	if len(appts) != 1 {
		t.Fatalf("got %d appointments, want 1", len(appts))
	}
	got := appts[0]
	if got.ID != appt.ID || got.Name != "Anna" || got.VisitDate != "2026-09-01" || got.VisitTime != "14:30" {
		t.Errorf("appointment = %+v, want seeded fields back", got)
	}
}

func TestExtractDBNameFromPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     string
		expected string
	}{
		{
			name:     "plain path",
			path:     "clinicbot.db",
			expected: "clinicbot.db",
		},
		{
			name:     "file prefix",
			path:     "file:data/clinicbot.db",
			expected: "data/clinicbot.db",
		},
		{
			name:     "query parameters stripped",
			path:     "clinicbot.db?cache=shared&mode=rwc",
			expected: "clinicbot.db",
		},
		{
			name:     "url-encoded path",
			path:     "file:my%20data/clinicbot.db",
			expected: "my data/clinicbot.db",
		},
		{
			name:     "empty path",
			path:     "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := database.ExtractDBNameFromPath(tc.path); got != tc.expected {
				t.Errorf("ExtractDBNameFromPath(%q) = %q, want %q", tc.path, got, tc.expected)
			}
		})
	}
}
