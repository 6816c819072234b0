package form_test

import (
	"testing"

	"clinicbot/internal/form"
)

func TestAdvanceCollectsFieldsInOrder(t *testing.T) {
	t.Parallel()

	st := form.New()
	if st.Stage != form.AwaitingName {
		t.Fatalf("new form stage = %v, want AwaitingName", st.Stage)
	}

	inputs := []string{"Anna Petrova", "2026-09-01", "14:30", "persistent headache"}

	for i, input := range inputs[:3] {
		rec := form.Advance(st, 42, input)
		if rec != nil {
			t.Fatalf("Advance #%d emitted a record early: %+v", i+1, rec)
		}
	}
	if st.Stage != form.AwaitingSymptoms {
		t.Fatalf("stage after three inputs = %v, want AwaitingSymptoms", st.Stage)
	}

	rec := form.Advance(st, 42, inputs[3])
	if rec == nil {
		t.Fatal("terminal Advance returned nil record")
	}

	if rec.UserID != 42 {
		t.Errorf("UserID = %d, want 42", rec.UserID)
	}
	if rec.Name != inputs[0] || rec.VisitDate != inputs[1] || rec.VisitTime != inputs[2] || rec.Symptoms != inputs[3] {
		t.Errorf("record fields = %+v, want values in submission order %v", rec, inputs)
	}
	if rec.ID == "" {
		t.Error("record ID is empty, want a generated id")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("record CreatedAt is zero")
	}
}

func TestAdvanceTakesValuesVerbatim(t *testing.T) {
	t.Parallel()

	// Date and time are deliberately not validated.
	st := form.New()
	form.Advance(st, 7, "x")
	form.Advance(st, 7, "whenever works")
	form.Advance(st, 7, "not a time")
	rec := form.Advance(st, 7, "")

	if rec == nil {
		t.Fatal("terminal Advance returned nil record")
	}
	if rec.VisitDate != "whenever works" || rec.VisitTime != "not a time" || rec.Symptoms != "" {
		t.Errorf("record fields altered: %+v", rec)
	}
}

func TestStageString(t *testing.T) {
	t.Parallel()

	stages := map[form.Stage]string{
		form.AwaitingName:     "awaiting_name",
		form.AwaitingDate:     "awaiting_date",
		form.AwaitingTime:     "awaiting_time",
		form.AwaitingSymptoms: "awaiting_symptoms",
	}
	for stage, want := range stages {
		if got := stage.String(); got != want {
			t.Errorf("Stage(%d).String() = %q, want %q", stage, got, want)
		}
	}
}
