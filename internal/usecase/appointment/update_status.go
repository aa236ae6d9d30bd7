package appointment

import (
	"context"

	"github.com/dentsync/clinic-api/internal/audit"
	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/models"
	"github.com/dentsync/clinic-api/internal/timezone"
)

type UpdateStatusInput struct {
	AppointmentID uint
	NewStatus     domain.Status
	Notes         string
	UpdatedByID   *uint
}

type UpdateAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	if !in.NewStatus.IsValid() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
	}

	domain.SetStatus(ap, in.NewStatus)
	domain.AppendNote(ap, in.Notes, timezone.Now())

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UpdatedByID,
		Action:   "appointment_status_" + string(in.NewStatus),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
