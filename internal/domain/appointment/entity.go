package appointment

import (
	"fmt"
	"time"

	"github.com/dentsync/clinic-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// SetStatus moves an appointment to any status. There is no transition
// table: cancelled can become confirmed again, completed can be reopened.
// Restricting this is a product decision that was deliberately not made.
func SetStatus(ap *models.Appointment, status Status) {
	ap.Status = string(status)
}

// AppendNote adds a timestamped line to the appointment's notes. Notes are
// an append-only log; earlier entries are never rewritten.
func AppendNote(ap *models.Appointment, note string, now time.Time) {
	if note == "" {
		return
	}

	entry := fmt.Sprintf("[%s] %s", now.Format(time.RFC3339), note)
	if ap.Notes == "" {
		ap.Notes = entry
		return
	}
	ap.Notes = ap.Notes + "\n" + entry
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share a nonzero duration. Back-to-back intervals do not
// overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
