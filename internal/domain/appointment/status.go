package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// ActiveStatuses are the only statuses that count toward conflict
// detection. Completed, cancelled and no-show appointments never block a
// new booking.
func ActiveStatuses() []string {
	return []string{string(StatusScheduled), string(StatusConfirmed)}
}

func (s Status) IsActive() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

func InitialStatus() Status {
	return StatusScheduled
}
