package httperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dentsync/clinic-api/internal/httperr"
)

func TestIsBusiness(t *testing.T) {
	err := httperr.ErrBusiness(httperr.CodeTimeConflict)

	if !httperr.IsBusiness(err, httperr.CodeTimeConflict) {
		t.Error("code not matched")
	}
	if httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Error("wrong code matched")
	}
	if httperr.IsBusiness(errors.New("boom"), httperr.CodeTimeConflict) {
		t.Error("plain error matched")
	}
	if httperr.IsBusiness(nil, httperr.CodeTimeConflict) {
		t.Error("nil matched")
	}

	wrapped := fmt.Errorf("schedule: %w", err)
	if !httperr.IsBusiness(wrapped, httperr.CodeTimeConflict) {
		t.Error("wrapped error not matched")
	}
}

func TestIsNotFound(t *testing.T) {
	for _, code := range []string{
		httperr.CodeTreatmentNotFound,
		httperr.CodeAppointmentNotFound,
		httperr.CodeDentistNotFound,
		httperr.CodePatientNotFound,
	} {
		if !httperr.IsNotFound(httperr.ErrBusiness(code)) {
			t.Errorf("%s not reported as not found", code)
		}
	}

	if httperr.IsNotFound(httperr.ErrBusiness(httperr.CodeTimeConflict)) {
		t.Error("time_conflict reported as not found")
	}
	if httperr.IsNotFound(errors.New("boom")) {
		t.Error("plain error reported as not found")
	}
}

func TestIsExclusionConflict(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23P01"}

	if !httperr.IsExclusionConflict(pgErr) {
		t.Error("23P01 not detected")
	}
	if !httperr.IsExclusionConflict(fmt.Errorf("insert: %w", pgErr)) {
		t.Error("wrapped 23P01 not detected")
	}
	if httperr.IsExclusionConflict(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation misread as exclusion conflict")
	}
	if httperr.IsExclusionConflict(errors.New("boom")) {
		t.Error("plain error misread as exclusion conflict")
	}
}
