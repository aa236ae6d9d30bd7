package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTreatmentByID(
	ctx context.Context,
	id uint,
) (*models.Treatment, error) {

	var treatment models.Treatment
	if err := r.db.WithContext(ctx).First(&treatment, id).Error; err != nil {
		return nil, err
	}
	return &treatment, nil
}

func (r *AppointmentGormRepository) GetDentistByID(
	ctx context.Context,
	id uint,
) (*models.Dentist, error) {

	var dentist models.Dentist
	if err := r.db.WithContext(ctx).First(&dentist, id).Error; err != nil {
		return nil, err
	}
	return &dentist, nil
}

func (r *AppointmentGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"dentist_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
				ap.DentistID,
				domain.ActiveStatuses(),
				ap.EndTime,
				ap.StartTime,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeTimeConflict)
		}

		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) HasTimeConflict(
	ctx context.Context,
	dentistID uint,
	start time.Time,
	end time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"dentist_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			dentistID,
			domain.ActiveStatuses(),
			end,
			start,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Schedule / availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListSchedule(
	ctx context.Context,
	dentistID uint,
	from time.Time,
	to time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient.User").
		Preload("Treatment").
		Where(
			"dentist_id = ? AND status IN ? AND start_time >= ? AND start_time <= ?",
			dentistID,
			domain.ActiveStatuses(),
			from,
			to,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) GetWorkingHours(
	ctx context.Context,
	dentistID uint,
	weekday int,
) (*models.DentistSchedule, error) {

	var ds models.DentistSchedule
	if err := r.db.WithContext(ctx).
		Where("dentist_id = ? AND weekday = ?", dentistID, weekday).
		First(&ds).Error; err != nil {
		return nil, err
	}

	return &ds, nil
}

func (r *AppointmentGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	dentistID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("start_time", "end_time").
		Where(
			"dentist_id = ? AND status IN ? AND start_time >= ? AND start_time < ?",
			dentistID, domain.ActiveStatuses(), start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
