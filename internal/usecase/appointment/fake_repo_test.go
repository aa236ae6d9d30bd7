package appointment_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/models"
)

// at returns a fixed Monday at the given clock time.
func at(hhmm string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", "2026-03-02 "+hhmm)
	if err != nil {
		panic(err)
	}
	return t
}

// fakeRepo is an in-memory implementation of the scheduling repository.
// CreateAppointmentIfFree honors the contract: the conflict check and the
// insert happen under one lock.
type fakeRepo struct {
	mu sync.Mutex

	treatments map[uint]models.Treatment
	dentists   map[uint]models.Dentist
	patients   map[uint]models.Patient
	schedules  []models.DentistSchedule

	appointments []models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		treatments: make(map[uint]models.Treatment),
		dentists:   make(map[uint]models.Dentist),
		patients:   make(map[uint]models.Patient),
		nextID:     1,
	}
}

func (r *fakeRepo) addTreatment(id uint, durationMin int, price float64) {
	r.treatments[id] = models.Treatment{
		ID: id, Name: "Checkup", DurationMin: durationMin, Price: price,
	}
}

func (r *fakeRepo) addDentist(id uint) {
	r.dentists[id] = models.Dentist{ID: id}
}

func (r *fakeRepo) addPatient(id uint) {
	r.patients[id] = models.Patient{ID: id, User: models.User{FullName: "Pat Doe"}}
}

func (r *fakeRepo) GetTreatmentByID(_ context.Context, id uint) (*models.Treatment, error) {
	t, ok := r.treatments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *fakeRepo) GetDentistByID(_ context.Context, id uint) (*models.Dentist, error) {
	d, ok := r.dentists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &d, nil
}

func (r *fakeRepo) GetPatientByID(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *fakeRepo) CreateAppointmentIfFree(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.DentistID != ap.DentistID {
			continue
		}
		if !domain.Status(existing.Status).IsActive() {
			continue
		}
		if domain.Overlaps(ap.StartTime, ap.EndTime, existing.StartTime, existing.EndTime) {
			return httperr.ErrBusiness(httperr.CodeTimeConflict)
		}
	}

	ap.ID = r.nextID
	r.nextID++
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt

	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) HasTimeConflict(_ context.Context, dentistID uint, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.DentistID != dentistID {
			continue
		}
		if !domain.Status(existing.Status).IsActive() {
			continue
		}
		if domain.Overlaps(start, end, existing.StartTime, existing.EndTime) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == id {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			ap.UpdatedAt = time.Now()
			r.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListSchedule(_ context.Context, dentistID uint, from, to time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.DentistID != dentistID {
			continue
		}
		if !domain.Status(ap.Status).IsActive() {
			continue
		}
		if ap.StartTime.Before(from) || ap.StartTime.After(to) {
			continue
		}
		// Mirror the gorm repository, which preloads Patient.User and
		// Treatment on schedule entries.
		ap.Patient = r.patients[ap.PatientID]
		ap.Treatment = r.treatments[ap.TreatmentID]
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

func (r *fakeRepo) GetWorkingHours(_ context.Context, dentistID uint, weekday int) (*models.DentistSchedule, error) {
	for _, ds := range r.schedules {
		if ds.DentistID == dentistID && ds.Weekday == weekday {
			out := ds
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListActiveAppointmentsForDay(_ context.Context, dentistID uint, start, end time.Time) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.DentistID != dentistID {
			continue
		}
		if !domain.Status(ap.Status).IsActive() {
			continue
		}
		if ap.StartTime.Before(start) || !ap.StartTime.Before(end) {
			continue
		}
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
