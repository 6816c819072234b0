// Package audit appends action records to the external log. Appends are
// best-effort and detached from the reply path: a log failure is recorded
// locally and never affects the user-visible response.
package audit

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"clinicbot/internal/database"
)

const (
	appendTimeout = 10 * time.Second
	queueSize     = 256
)

// Action tags for the fixed dispatcher branches. Content hits use
// MessageTag/ButtonTag instead.
const (
	ActionStart   = "/start"
	ActionReset   = "/reset"
	ActionSetName = "set_name"
	ActionMessage = "message"
)

// MessageTag returns the tag logged for a keyword-matched content row.
func MessageTag(command string) string { return "msg:" + command }

// ButtonTag returns the tag logged for a button press resolved by command.
func ButtonTag(command string) string { return "btn:" + command }

// Recorder writes audit records without blocking the caller. A single worker
// drains the queue, so records land in the store in emission order.
type Recorder struct {
	store  database.Store
	logger *slog.Logger
	queue  chan *database.ActionLog
	wg     sync.WaitGroup
}

// NewRecorder creates a Recorder over the given store and starts its worker.
func NewRecorder(store database.Store, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Recorder{
		store:  store,
		logger: logger.With("component", "audit"),
		queue:  make(chan *database.ActionLog, queueSize),
	}
	go r.drain()
	return r
}

func (r *Recorder) drain() {
	for entry := range r.queue {
		// Detached from the inbound event's context: a reply already sent
		// must not cancel its own audit append.
		ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
		if err := r.store.AppendActionLog(ctx, entry); err != nil {
			r.logger.Warn("Audit append failed", "user_id", entry.UserID, "action", entry.Action, "error", err)
		}
		cancel()
		r.wg.Done()
	}
}

// Record enqueues one action record without blocking the caller. displayName
// is the name known for the user at the time of the event, possibly empty.
// Failures are logged and dropped; there is no retry. A full queue drops the
// record rather than stall the reply path.
func (r *Recorder) Record(userID int64, displayName, username, action string) {
	entry := &database.ActionLog{
		CreatedAt:   time.Now().UTC(),
		UserID:      userID,
		DisplayName: displayName,
		Username:    username,
		Action:      action,
	}

	r.wg.Add(1)
	select {
	case r.queue <- entry:
	default:
		r.wg.Done()
		r.logger.Warn("Audit queue full, record dropped", "user_id", userID, "action", action)
	}
}

// Wait blocks until all in-flight appends have finished. Used on shutdown and
// in tests.
func (r *Recorder) Wait() {
	r.wg.Wait()
}
