package appointment_test

import (
	"context"
	"testing"

	"github.com/dentsync/clinic-api/internal/audit"
	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	ucappointment "github.com/dentsync/clinic-api/internal/usecase/appointment"
)

func TestGetDentistSchedule(t *testing.T) {
	repo := seededRepo()
	scheduleUC := newScheduleUC(repo)
	uc := ucappointment.NewGetDentistSchedule(repo)

	for _, start := range []string{"11:00", "09:00", "10:00"} {
		if err := scheduleAt(t, scheduleUC, testDentist, at(start)); err != nil {
			t.Fatalf("booking @%s: %v", start, err)
		}
	}
	// another dentist, must not show up
	if err := scheduleAt(t, scheduleUC, 2, at("09:30")); err != nil {
		t.Fatalf("other dentist booking: %v", err)
	}

	entries, err := uc.Execute(context.Background(), testDentist, at("08:00"), at("12:00"))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].StartTime.Before(entries[i-1].StartTime) {
			t.Fatalf("entries not ascending: %v before %v",
				entries[i].StartTime, entries[i-1].StartTime)
		}
	}

	if entries[0].PatientName != "Pat Doe" {
		t.Errorf("patient name = %q, want Pat Doe", entries[0].PatientName)
	}
	if entries[0].TreatmentName != "Checkup" {
		t.Errorf("treatment name = %q, want Checkup", entries[0].TreatmentName)
	}
}

// Range bounds are inclusive on the appointment start time.
func TestGetDentistScheduleInclusiveBounds(t *testing.T) {
	repo := seededRepo()
	scheduleUC := newScheduleUC(repo)
	uc := ucappointment.NewGetDentistSchedule(repo)

	for _, start := range []string{"09:00", "11:00"} {
		if err := scheduleAt(t, scheduleUC, testDentist, at(start)); err != nil {
			t.Fatalf("booking @%s: %v", start, err)
		}
	}

	entries, err := uc.Execute(context.Background(), testDentist, at("09:00"), at("11:00"))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want both boundary appointments", len(entries))
	}
}

func TestGetDentistScheduleExcludesInactive(t *testing.T) {
	repo := seededRepo()
	scheduleUC := newScheduleUC(repo)
	statusUC := ucappointment.NewUpdateAppointmentStatus(repo, audit.NewNopDispatcher())
	uc := ucappointment.NewGetDentistSchedule(repo)

	ap1, err := scheduleUC.Execute(context.Background(), ucappointment.ScheduleAppointmentInput{
		PatientID: testPatient, DentistID: testDentist, TreatmentID: testTreatment,
		Start: at("09:00"),
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if err := scheduleAt(t, scheduleUC, testDentist, at("10:00")); err != nil {
		t.Fatalf("second booking: %v", err)
	}

	if _, err := statusUC.Execute(context.Background(), ucappointment.UpdateStatusInput{
		AppointmentID: ap1.ID,
		NewStatus:     domain.StatusCancelled,
	}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	entries, err := uc.Execute(context.Background(), testDentist, at("08:00"), at("12:00"))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want cancelled appointment excluded", len(entries))
	}
	if !entries[0].StartTime.Equal(at("10:00")) {
		t.Fatalf("wrong entry survived: %v", entries[0].StartTime)
	}
}

func TestGetDentistScheduleEmpty(t *testing.T) {
	repo := seededRepo()
	uc := ucappointment.NewGetDentistSchedule(repo)

	entries, err := uc.Execute(context.Background(), testDentist, at("08:00"), at("12:00"))
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Fatalf("got %v, want empty non-nil slice", entries)
	}
}
