package appointment_test

import (
	"strings"
	"testing"
	"time"

	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/models"
)

func at(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2026-03-02 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"identical intervals", "10:00", "10:30", "10:00", "10:30", true},
		{"b starts inside a", "10:00", "10:30", "10:15", "10:45", true},
		{"a starts inside b", "10:15", "10:45", "10:00", "10:30", true},
		{"b contained in a", "10:00", "11:00", "10:15", "10:30", true},
		{"back to back, a then b", "10:00", "10:30", "10:30", "11:00", false},
		{"back to back, b then a", "10:30", "11:00", "10:00", "10:30", false},
		{"disjoint", "09:00", "09:30", "11:00", "11:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Overlaps(at(tt.aStart), at(tt.aEnd), at(tt.bStart), at(tt.bEnd))
			if got != tt.want {
				t.Errorf("Overlaps(%s-%s, %s-%s) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
		})
	}
}

func TestAppendNote(t *testing.T) {
	now := time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)

	ap := &models.Appointment{}

	domain.AppendNote(ap, "first note", now)
	if !strings.Contains(ap.Notes, "first note") {
		t.Fatalf("notes = %q, want first note present", ap.Notes)
	}
	if !strings.Contains(ap.Notes, now.Format(time.RFC3339)) {
		t.Fatalf("notes = %q, want timestamp present", ap.Notes)
	}

	domain.AppendNote(ap, "second note", now.Add(time.Hour))

	if !strings.Contains(ap.Notes, "first note") {
		t.Fatalf("append overwrote earlier entry: %q", ap.Notes)
	}
	if !strings.Contains(ap.Notes, "second note") {
		t.Fatalf("second note missing: %q", ap.Notes)
	}

	lines := strings.Split(ap.Notes, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 note lines, got %d: %q", len(lines), ap.Notes)
	}
}

func TestAppendNoteEmptyIsNoop(t *testing.T) {
	ap := &models.Appointment{Notes: "existing"}
	domain.AppendNote(ap, "", time.Now())
	if ap.Notes != "existing" {
		t.Fatalf("empty note changed notes: %q", ap.Notes)
	}
}

func TestSetStatus(t *testing.T) {
	ap := &models.Appointment{Status: string(domain.StatusCompleted)}

	// no transition table: completed may go back to scheduled
	domain.SetStatus(ap, domain.StatusScheduled)
	if ap.Status != string(domain.StatusScheduled) {
		t.Fatalf("status = %q, want scheduled", ap.Status)
	}
}
