package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Codes raised by the scheduling and catalog use cases. Handlers map
// *_not_found to 404 and everything else to 400.
const (
	CodeTimeConflict        = "time_conflict"
	CodeTreatmentNotFound   = "treatment_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeDentistNotFound     = "dentist_not_found"
	CodePatientNotFound     = "patient_not_found"
	CodeInvalidStatus       = "invalid_status"
	CodeInvalidDuration     = "invalid_duration"
	CodeInvalidPrice        = "invalid_price"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// IsNotFound reports whether err carries one of the *_not_found codes.
func IsNotFound(err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}
	switch be.Code {
	case CodeTreatmentNotFound, CodeAppointmentNotFound,
		CodeDentistNotFound, CodePatientNotFound:
		return true
	}
	return false
}

// IsExclusionConflict detects the Postgres exclusion-constraint violation
// (SQLSTATE 23P01) raised by the appointments no-overlap constraint when two
// inserts race past the application-level check.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
