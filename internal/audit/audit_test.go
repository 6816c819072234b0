package audit_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"clinicbot/internal/audit"
	"clinicbot/internal/database"
)

// captureStore records appended action logs; err makes appends fail and
// firstDelay stalls the first append.
type captureStore struct {
	mu         sync.Mutex
	slowOnce   sync.Once
	firstDelay time.Duration
	entries    []database.ActionLog
	err        error
}

func (s *captureStore) Ping(context.Context) error { return nil }
func (s *captureStore) GetContentRows(context.Context) ([]database.ContentRow, error) {
	return nil, nil
}

func (s *captureStore) AppendActionLog(_ context.Context, entry *database.ActionLog) error {
	if s.firstDelay > 0 {
		s.slowOnce.Do(func() { time.Sleep(s.firstDelay) })
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *captureStore) SaveAppointment(context.Context, *database.Appointment) error { return nil }
func (s *captureStore) ListAppointments(context.Context, int) ([]database.Appointment, error) {
	return nil, nil
}
func (s *captureStore) PruneActionLogs(context.Context, time.Time) (int64, error) { return 0, nil }
func (s *captureStore) RunSQLMaintenance(context.Context) error                   { return nil }

func TestRecordAppendsEntry(t *testing.T) {
	t.Parallel()

	store := &captureStore{}
	r := audit.NewRecorder(store, nil)

	r.Record(42, "Anna", "anna_p", audit.MessageTag("headache"))
	r.Wait()

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(store.entries))
	}

	entry := store.entries[0]
	if entry.UserID != 42 || entry.DisplayName != "Anna" || entry.Username != "anna_p" {
		t.Errorf("entry = %+v, want user fields preserved", entry)
	}
	if entry.Action != "msg:headache" {
		t.Errorf("Action = %q, want %q", entry.Action, "msg:headache")
	}
	if entry.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestRecordsLandInEmissionOrder(t *testing.T) {
	t.Parallel()

	// The first append is slow; the follow-up record still must not
	// overtake it in the store.
	store := &captureStore{firstDelay: 50 * time.Millisecond}
	r := audit.NewRecorder(store, nil)

	r.Record(7, "", "anna_p", audit.ActionStart)
	r.Record(7, "Anna", "anna_p", audit.ActionSetName)
	r.Wait()

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(store.entries))
	}
	if store.entries[0].Action != audit.ActionStart || store.entries[1].Action != audit.ActionSetName {
		t.Errorf("actions = [%s %s], want [%s %s]",
			store.entries[0].Action, store.entries[1].Action,
			audit.ActionStart, audit.ActionSetName)
	}
}

func TestRecordFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	store := &captureStore{err: errors.New("log table gone")}
	r := audit.NewRecorder(store, nil)

	// Must not panic and must not block the caller.
	r.Record(1, "", "someone", audit.ActionStart)
	r.Wait()
}

func TestActionTags(t *testing.T) {
	t.Parallel()

	if got := audit.MessageTag("faq"); got != "msg:faq" {
		t.Errorf("MessageTag = %q, want msg:faq", got)
	}
	if got := audit.ButtonTag("faq"); got != "btn:faq" {
		t.Errorf("ButtonTag = %q, want btn:faq", got)
	}
}
