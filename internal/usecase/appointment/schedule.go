package appointment

import (
	"context"
	"time"

	"github.com/dentsync/clinic-api/internal/audit"
	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleAppointmentInput struct {
	PatientID   uint
	DentistID   uint
	TreatmentID uint

	Start time.Time
	Notes string

	CreatedByID *uint
}

// ======================================================
// USE CASE
// ======================================================

type ScheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	locks *dentistLocks
}

func NewScheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ScheduleAppointment {
	return &ScheduleAppointment{
		repo:  repo,
		audit: audit,
		locks: newDentistLocks(),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ScheduleAppointment) Execute(
	ctx context.Context,
	in ScheduleAppointmentInput,
) (*models.Appointment, error) {

	treatment, err := uc.repo.GetTreatmentByID(ctx, in.TreatmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeTreatmentNotFound)
	}

	if _, err := uc.repo.GetDentistByID(ctx, in.DentistID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeDentistNotFound)
	}

	if _, err := uc.repo.GetPatientByID(ctx, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodePatientNotFound)
	}

	end := in.Start.Add(time.Duration(treatment.DurationMin) * time.Minute)

	ap := &models.Appointment{
		PatientID:   in.PatientID,
		DentistID:   in.DentistID,
		TreatmentID: treatment.ID,
		StartTime:   in.Start,
		EndTime:     end,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		CreatedByID: in.CreatedByID,
	}

	// Check + insert must be atomic with respect to other bookings for
	// this dentist.
	lock := uc.locks.forDentist(in.DentistID)
	lock.Lock()
	err = uc.repo.CreateAppointmentIfFree(ctx, ap)
	lock.Unlock()

	if err != nil {
		if httperr.IsExclusionConflict(err) {
			return nil, httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.CreatedByID,
		Action:   "appointment_scheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
