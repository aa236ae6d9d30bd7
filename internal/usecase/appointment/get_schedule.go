package appointment

import (
	"context"
	"time"

	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/dto"
)

type GetDentistSchedule struct {
	repo domain.Repository
}

func NewGetDentistSchedule(
	repo domain.Repository,
) *GetDentistSchedule {
	return &GetDentistSchedule{
		repo: repo,
	}
}

func (uc *GetDentistSchedule) Execute(
	ctx context.Context,
	dentistID uint,
	from time.Time,
	to time.Time,
) ([]dto.ScheduleEntryDTO, error) {

	appointments, err := uc.repo.ListSchedule(ctx, dentistID, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ScheduleEntryDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.ScheduleEntryDTO{
			ID:            ap.ID,
			StartTime:     ap.StartTime,
			EndTime:       ap.EndTime,
			Status:        ap.Status,
			PatientID:     ap.PatientID,
			PatientName:   ap.Patient.User.FullName,
			TreatmentName: ap.Treatment.Name,
		})
	}

	return out, nil
}
