package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/httpresp"
	"github.com/dentsync/clinic-api/internal/middleware"
	"github.com/dentsync/clinic-api/internal/models"
	ucAppointment "github.com/dentsync/clinic-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	db *gorm.DB

	scheduleUC     *ucAppointment.ScheduleAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	getScheduleUC  *ucAppointment.GetDentistSchedule
	hasConflictUC  *ucAppointment.HasConflict
	availabilityUC *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	db *gorm.DB,
	scheduleUC *ucAppointment.ScheduleAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	getScheduleUC *ucAppointment.GetDentistSchedule,
	hasConflictUC *ucAppointment.HasConflict,
	availabilityUC *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		db:             db,
		scheduleUC:     scheduleUC,
		updateStatusUC: updateStatusUC,
		getScheduleUC:  getScheduleUC,
		hasConflictUC:  hasConflictUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID   uint   `json:"patient_id" binding:"required"`
	DentistID   uint   `json:"dentist_id" binding:"required"`
	TreatmentID uint   `json:"treatment_id" binding:"required"`
	StartTime   string `json:"start_time" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "start_time must be RFC 3339.")
		return
	}

	ap, err := h.scheduleUC.Execute(c.Request.Context(), ucAppointment.ScheduleAppointmentInput{
		PatientID:   req.PatientID,
		DentistID:   req.DentistID,
		TreatmentID: req.TreatmentID,
		Start:       start,
		Notes:       req.Notes,
		CreatedByID: &userID,
	})
	if err != nil {
		writeScheduleError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func writeScheduleError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, httperr.CodeTimeConflict):
		httperr.BadRequest(c, httperr.CodeTimeConflict,
			"Time slot is not available for the specified dentist.")
	case httperr.IsNotFound(err):
		be := err.(httperr.BusinessError)
		httperr.NotFound(c, be.Code, "Referenced entity not found.")
	default:
		httperr.Internal(c, "failed_to_schedule", "Failed to schedule appointment.")
	}
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var ap models.Appointment
	if err := h.db.
		Preload("Patient.User").
		Preload("Dentist").
		Preload("Treatment").
		First(&ap, id).Error; err != nil {

		httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Appointment not found.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	idNum, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: uint(idNum),
		NewStatus:     domain.Status(req.Status),
		Notes:         req.Notes,
		UpdatedByID:   &userID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidStatus):
			httperr.BadRequest(c, httperr.CodeInvalidStatus, "Unknown appointment status.")
		case httperr.IsBusiness(err, httperr.CodeAppointmentNotFound):
			httperr.NotFound(c, httperr.CodeAppointmentNotFound, "Appointment not found.")
		default:
			httperr.Internal(c, "failed_to_update_status", "Failed to update appointment.")
		}
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DENTIST SCHEDULE
// ======================================================

func (h *AppointmentHandler) DentistSchedule(c *gin.Context) {
	dentistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid dentist id.")
		return
	}

	from, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "start must be RFC 3339.")
		return
	}

	to, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.BadRequest(c, "invalid_end", "end must be RFC 3339.")
		return
	}

	entries, err := h.getScheduleUC.Execute(c.Request.Context(), uint(dentistID), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Failed to load schedule.")
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	dentistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid dentist id.")
		return
	}

	treatmentID, err := strconv.ParseUint(c.Query("treatment_id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_treatment_id", "treatment_id is required.")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	// Optional exact pre-check: ?start=<RFC3339> answers "is this precise
	// slot free" instead of listing the whole day.
	if startStr := c.Query("start"); startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_start", "start must be RFC 3339.")
			return
		}

		conflict, err := h.hasConflictUC.Execute(
			c.Request.Context(), uint(dentistID), start, uint(treatmentID),
		)
		if err != nil {
			if httperr.IsBusiness(err, httperr.CodeTreatmentNotFound) {
				httperr.NotFound(c, httperr.CodeTreatmentNotFound, "Treatment not found.")
				return
			}
			httperr.Internal(c, "failed_to_check_conflict", "Failed to check availability.")
			return
		}

		httpresp.OK(c, gin.H{"available": !conflict})
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		DentistID:   uint(dentistID),
		TreatmentID: uint(treatmentID),
		Date:        date,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeTreatmentNotFound) {
			httperr.NotFound(c, httperr.CodeTreatmentNotFound, "Treatment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Failed to compute availability.")
		return
	}

	httpresp.List(c, slots)
}
