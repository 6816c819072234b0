// Package state tracks per-user conversation state: whether a display name
// has been captured and which form, if any, is in progress. State lives in
// memory for the lifetime of the process; losing it on restart only means a
// user is re-asked for their name, which is accepted behavior.
package state

import (
	"sync"

	"clinicbot/internal/form"
)

// userState is one user's mutable conversation record. A record is created
// implicitly on first access and never removed.
type userState struct {
	displayName string
	activeForm  *form.State
}

// Tracker is a concurrency-safe store of per-user conversation state. Each
// method is a single atomic step with no I/O inside the lock, so events for
// one user applied in arrival order observe a consistent sequence.
type Tracker struct {
	mu    sync.RWMutex
	users map[int64]*userState
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{users: make(map[int64]*userState)}
}

func (t *Tracker) get(userID int64) *userState {
	st, ok := t.users[userID]
	if !ok {
		st = &userState{}
		t.users[userID] = st
	}
	return st
}

// DisplayName returns the captured name for the user, or "" if none.
func (t *Tracker) DisplayName(userID int64) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if st, ok := t.users[userID]; ok {
		return st.displayName
	}
	return ""
}

// HasName reports whether a display name has been captured for the user.
func (t *Tracker) HasName(userID int64) bool {
	return t.DisplayName(userID) != ""
}

// SetName captures the user's display name.
func (t *Tracker) SetName(userID int64, name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.get(userID).displayName = name
}

// Reset clears the user's name and aborts any active form, discarding partial
// data. Resetting twice in a row is a no-op the second time.
func (t *Tracker) Reset(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.get(userID)
	st.displayName = ""
	st.activeForm = nil
}

// BeginForm starts a form for the user at the first stage. If a form is
// already active it is restarted from scratch, last writer wins.
func (t *Tracker) BeginForm(userID int64) form.Stage {
	t.mu.Lock()
	defer t.mu.Unlock()
	st := t.get(userID)
	st.activeForm = form.New()
	return st.activeForm.Stage
}

// FormActive reports whether the user has a form in progress.
func (t *Tracker) FormActive(userID int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st, ok := t.users[userID]
	return ok && st.activeForm != nil
}

// AbortForm discards the user's active form, if any, keeping the name.
func (t *Tracker) AbortForm(userID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.get(userID).activeForm = nil
}

// AdvanceForm feeds one message into the user's active form. The bool result
// is false when no form is active. When the form completes, the emitted
// record is returned and the form is deleted; otherwise record is nil and
// next holds the stage now awaiting input.
func (t *Tracker) AdvanceForm(userID int64, input string) (record *form.Record, next form.Stage, active bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.get(userID)
	if st.activeForm == nil {
		return nil, 0, false
	}

	record = form.Advance(st.activeForm, userID, input)
	if record != nil {
		st.activeForm = nil
		return record, 0, true
	}
	return nil, st.activeForm.Stage, true
}
