// Package form implements the appointment intake dialogue as an explicit
// finite state machine: a fixed name → date → time → symptoms sequence with
// no branching and no back-navigation.
package form

import (
	"time"

	"github.com/google/uuid"
)

// Stage identifies which field the form is waiting for.
type Stage int

const (
	AwaitingName Stage = iota
	AwaitingDate
	AwaitingTime
	AwaitingSymptoms
)

// String returns the stage name for logging.
func (s Stage) String() string {
	switch s {
	case AwaitingName:
		return "awaiting_name"
	case AwaitingDate:
		return "awaiting_date"
	case AwaitingTime:
		return "awaiting_time"
	case AwaitingSymptoms:
		return "awaiting_symptoms"
	default:
		return "unknown"
	}
}

// State is one in-progress form instance.
type State struct {
	Stage Stage

	name      string
	visitDate string
	visitTime string
}

// New returns a fresh form at the first stage.
func New() *State {
	return &State{Stage: AwaitingName}
}

// Record is one completed appointment, emitted by the terminal transition.
type Record struct {
	ID        string
	CreatedAt time.Time
	UserID    int64

	Name      string
	VisitDate string
	VisitTime string
	Symptoms  string
}

// Advance consumes one free-text message as the current stage's field value
// and moves the form to the next stage. Values are taken verbatim; date and
// time are deliberately not validated. On the terminal stage it returns the
// completed Record and the state must be discarded by the caller.
func Advance(st *State, userID int64, input string) *Record {
	switch st.Stage {
	case AwaitingName:
		st.name = input
		st.Stage = AwaitingDate
	case AwaitingDate:
		st.visitDate = input
		st.Stage = AwaitingTime
	case AwaitingTime:
		st.visitTime = input
		st.Stage = AwaitingSymptoms
	case AwaitingSymptoms:
		return &Record{
			ID:        uuid.NewString(),
			CreatedAt: time.Now().UTC(),
			UserID:    userID,
			Name:      st.name,
			VisitDate: st.visitDate,
			VisitTime: st.visitTime,
			Symptoms:  input,
		}
	}
	return nil
}
