package appointment

import (
	"context"
	"time"

	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/httperr"
)

// HasConflict is the read-side half of the scheduling check, exposed so
// clients can probe a slot before submitting a booking. Its answer is
// advisory: the booking path re-checks under lock.
type HasConflict struct {
	repo domain.Repository
}

func NewHasConflict(repo domain.Repository) *HasConflict {
	return &HasConflict{repo: repo}
}

func (uc *HasConflict) Execute(
	ctx context.Context,
	dentistID uint,
	start time.Time,
	treatmentID uint,
) (bool, error) {

	treatment, err := uc.repo.GetTreatmentByID(ctx, treatmentID)
	if err != nil {
		return false, httperr.ErrBusiness(httperr.CodeTreatmentNotFound)
	}

	end := start.Add(time.Duration(treatment.DurationMin) * time.Minute)

	return uc.repo.HasTimeConflict(ctx, dentistID, start, end)
}
