package appointment

import "time"

type AvailabilityInput struct {
	DentistID   uint
	TreatmentID uint
	Date        time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
