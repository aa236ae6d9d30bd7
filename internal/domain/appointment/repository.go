package appointment

import (
	"context"
	"time"

	"github.com/dentsync/clinic-api/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetTreatmentByID(
		ctx context.Context,
		id uint,
	) (*models.Treatment, error)

	GetDentistByID(
		ctx context.Context,
		id uint,
	) (*models.Dentist, error)

	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointmentIfFree runs the conflict check and the insert as a
	// single transaction. It returns the time_conflict business error when
	// [ap.StartTime, ap.EndTime) overlaps an active appointment of the
	// same dentist.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
	) error

	HasTimeConflict(
		ctx context.Context,
		dentistID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Schedule / availability --------

	// ListSchedule returns the active appointments of a dentist whose
	// start instant lies in [from, to], both ends inclusive, ascending by
	// start.
	ListSchedule(
		ctx context.Context,
		dentistID uint,
		from time.Time,
		to time.Time,
	) ([]models.Appointment, error)

	GetWorkingHours(
		ctx context.Context,
		dentistID uint,
		weekday int,
	) (*models.DentistSchedule, error)

	ListActiveAppointmentsForDay(
		ctx context.Context,
		dentistID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
