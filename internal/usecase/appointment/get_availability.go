package appointment

import (
	"context"
	"time"

	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/httperr"
)

// GetAvailability lists the free slots of a dentist for one day and one
// treatment, walking the dentist's working hours in treatment-sized steps
// and skipping slots that overlap an active appointment.
type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	treatment, err := uc.repo.GetTreatmentByID(ctx, in.TreatmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeTreatmentNotFound)
	}

	weekday := int(in.Date.Weekday())

	wh, err := uc.repo.GetWorkingHours(ctx, in.DentistID, weekday)
	if err != nil || !wh.Active {
		return []domain.TimeSlot{}, nil
	}

	loc := in.Date.Location()

	parseHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			loc,
		)
	}

	dayStart := parseHM(wh.StartTime)
	dayEnd := parseHM(wh.EndTime)

	appointments, err := uc.repo.ListActiveAppointmentsForDay(
		ctx,
		in.DentistID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	slotDuration := time.Duration(treatment.DurationMin) * time.Minute
	slots := []domain.TimeSlot{}

	apIdx := 0

	for cur := dayStart; !cur.Add(slotDuration).After(dayEnd); cur = cur.Add(slotDuration) {

		slotStart := cur
		slotEnd := cur.Add(slotDuration)

		// skip appointments that end at or before this slot
		for apIdx < len(appointments) && !appointments[apIdx].EndTime.After(slotStart) {
			apIdx++
		}

		conflict := false
		for i := apIdx; i < len(appointments); i++ {
			ap := appointments[i]
			if !ap.StartTime.Before(slotEnd) {
				break
			}
			if domain.Overlaps(slotStart, slotEnd, ap.StartTime, ap.EndTime) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, domain.TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots, nil
}
