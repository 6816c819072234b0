package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the data access interface. Methods accept context.Context for
// cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// GetContentRows retrieves all content rows in table order. The table is
	// read in full on every call so external edits are visible immediately.
	GetContentRows(ctx context.Context) ([]ContentRow, error)

	// AppendActionLog appends one audit record.
	AppendActionLog(ctx context.Context, entry *ActionLog) error

	// SaveAppointment inserts one completed appointment record.
	SaveAppointment(ctx context.Context, appt *Appointment) error

	// ListAppointments retrieves the most recent 'limit' appointments.
	ListAppointments(ctx context.Context, limit int) ([]Appointment, error)

	// PruneActionLogs deletes audit records created before the cutoff and
	// returns the number of deleted rows.
	PruneActionLogs(ctx context.Context, before time.Time) (int64, error)

	// RunSQLMaintenance performs database maintenance tasks like VACUUM.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore implements Store using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a Store backed by sqlx. It requires a connected sqlx.DB
// instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) GetContentRows(ctx context.Context) ([]ContentRow, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	var rows []ContentRow
	query := `
        SELECT id, position, command, keywords, response_text, media_url, button_texts, button_commands
        FROM content
        ORDER BY position, id;
    `

	err := s.db.SelectContext(ctx, &rows, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error fetching content rows", "error", err)
		return nil, fmt.Errorf("failed to fetch content rows: %w", err)
	}

	s.logger.DebugContext(ctx, "Fetched content rows", "count", len(rows))
	return rows, nil
}

func (s *sqlxStore) AppendActionLog(ctx context.Context, entry *ActionLog) error {
	if entry == nil {
		return errors.New("cannot append nil action log entry")
	}
	if entry.UserID == 0 {
		return errors.New("action log entry must have a non-zero user_id")
	}
	if entry.Action == "" {
		return errors.New("action log entry must have a non-empty action")
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO action_logs (created_at, user_id, display_name, username, action)
        VALUES (:created_at, :user_id, :display_name, :username, :action);
    `

	result, err := s.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error appending action log", "user_id", entry.UserID, "action", entry.Action, "error", err)
		return fmt.Errorf("failed to append action log (user %d, action %q): %w", entry.UserID, entry.Action, err)
	}

	if id, err := result.LastInsertId(); err == nil {
		entry.ID = uint(id) //nolint:gosec // row ids stay well below the uint range
	}

	s.logger.DebugContext(ctx, "Action log appended", "user_id", entry.UserID, "action", entry.Action)
	return nil
}

func (s *sqlxStore) SaveAppointment(ctx context.Context, appt *Appointment) error {
	if appt == nil {
		return errors.New("cannot save nil appointment")
	}
	if appt.ID == "" {
		return errors.New("appointment must have a non-empty id")
	}
	if appt.UserID == 0 {
		return errors.New("appointment must have a non-zero user_id")
	}

	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now().UTC()
	}

	query := `
        INSERT INTO appointments (id, created_at, user_id, name, visit_date, visit_time, symptoms)
        VALUES (:id, :created_at, :user_id, :name, :visit_date, :visit_time, :symptoms);
    `

	if _, err := s.db.NamedExecContext(ctx, query, appt); err != nil {
		s.logger.ErrorContext(ctx, "Error saving appointment", "user_id", appt.UserID, "appointment_id", appt.ID, "error", err)
		return fmt.Errorf("failed to save appointment %s (user %d): %w", appt.ID, appt.UserID, err)
	}

	s.logger.DebugContext(ctx, "Appointment saved", "user_id", appt.UserID, "appointment_id", appt.ID)
	return nil
}

func (s *sqlxStore) ListAppointments(ctx context.Context, limit int) ([]Appointment, error) {
	if limit <= 0 {
		limit = 20
	} else if limit > 100 {
		limit = 100
	}

	var appts []Appointment
	query := `
        SELECT id, created_at, user_id, name, visit_date, visit_time, symptoms
        FROM appointments
        ORDER BY created_at DESC
        LIMIT ?;
    `

	if err := s.db.SelectContext(ctx, &appts, query, limit); err != nil {
		s.logger.ErrorContext(ctx, "Error listing appointments", "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return appts, nil
}

func (s *sqlxStore) PruneActionLogs(ctx context.Context, before time.Time) (int64, error) {
	if before.IsZero() {
		return 0, errors.New("prune cutoff cannot be zero")
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM action_logs WHERE created_at < ?;`, before)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error pruning action logs", "before", before, "error", err)
		return 0, fmt.Errorf("failed to prune action logs: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		s.logger.WarnContext(ctx, "Could not count pruned action logs", "error", err)
		return 0, nil
	}

	s.logger.InfoContext(ctx, "Pruned action logs", "before", before, "deleted", deleted)
	return deleted, nil
}

// RunSQLMaintenance executes a VACUUM on the SQLite database. VACUUM must run
// outside a transaction in SQLite.
func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	if ctx.Err() != nil {
		s.logger.WarnContext(ctx, "Context cancelled before starting VACUUM", "error", ctx.Err())
		return ctx.Err()
	}

	s.logger.InfoContext(ctx, "Starting database maintenance (VACUUM)...")

	_, err := s.db.ExecContext(ctx, "VACUUM;")

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled):
		s.logger.WarnContext(ctx, "VACUUM timed out or was cancelled", "error", err)
		return fmt.Errorf("database maintenance (VACUUM) timed out: %w", err)

	case err != nil:
		s.logger.ErrorContext(ctx, "Database maintenance (VACUUM) failed", "error", err)
		return fmt.Errorf("failed to execute VACUUM: %w", err)
	}

	s.logger.InfoContext(ctx, "Database maintenance (VACUUM) completed.")
	return nil
}
