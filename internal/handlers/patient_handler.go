package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/dto"
	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/httpresp"
	"github.com/dentsync/clinic-api/internal/models"
)

type PatientHandler struct {
	db *gorm.DB
}

func NewPatientHandler(db *gorm.DB) *PatientHandler {
	return &PatientHandler{db: db}
}

// --------- Requests ---------

type RegisterPatientRequest struct {
	UserID           uint   `json:"user_id" binding:"required"`
	MedicalHistory   string `json:"medical_history"`
	Allergies        string `json:"allergies"`
	EmergencyContact string `json:"emergency_contact"`
}

// ======================================================
// REGISTER
// ======================================================

func (h *PatientHandler) Register(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var user models.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User account not found.")
		return
	}

	var count int64
	h.db.Model(&models.Patient{}).Where("user_id = ?", req.UserID).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "patient_already_registered", "User already has a patient profile.")
		return
	}

	patient := models.Patient{
		UserID:           req.UserID,
		MedicalHistory:   req.MedicalHistory,
		Allergies:        req.Allergies,
		EmergencyContact: req.EmergencyContact,
		UnderTreatment:   false,
	}

	if err := h.db.Create(&patient).Error; err != nil {
		httperr.Internal(c, "failed_to_register_patient", "Failed to register patient.")
		return
	}

	c.JSON(http.StatusCreated, patient)
}

// ======================================================
// SEARCH
// ======================================================

func (h *PatientHandler) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("query"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}

	q := h.db.
		Model(&models.Patient{}).
		Preload("User").
		Joins("JOIN users ON users.id = patients.user_id")

	if term != "" {
		like := "%" + term + "%"
		q = q.Where(
			"users.full_name ILIKE ? OR users.email ILIKE ? OR users.phone ILIKE ?",
			like, like, like,
		)
	}

	var patients []models.Patient
	if err := q.
		Order("patients.id ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&patients).Error; err != nil {

		httperr.Internal(c, "failed_to_search_patients", "Failed to search patients.")
		return
	}

	httpresp.List(c, patients)
}

// ======================================================
// TREATMENT HISTORY
// ======================================================

// History lists the completed treatments of a patient, newest first.
func (h *PatientHandler) History(c *gin.Context) {
	patientID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid patient id.")
		return
	}

	var patient models.Patient
	if err := h.db.First(&patient, patientID).Error; err != nil {
		httperr.NotFound(c, httperr.CodePatientNotFound, "Patient not found.")
		return
	}

	q := h.db.
		Model(&models.Appointment{}).
		Preload("Treatment").
		Where(
			"patient_id = ? AND status = ?",
			patientID, string(domain.StatusCompleted),
		)

	if fromStr := c.Query("start"); fromStr != "" {
		if from, err := time.Parse(time.RFC3339, fromStr); err == nil {
			q = q.Where("start_time >= ?", from)
		}
	}
	if toStr := c.Query("end"); toStr != "" {
		if to, err := time.Parse(time.RFC3339, toStr); err == nil {
			q = q.Where("start_time <= ?", to)
		}
	}

	var appointments []models.Appointment
	if err := q.Order("start_time DESC").Find(&appointments).Error; err != nil {
		httperr.Internal(c, "failed_to_get_history", "Failed to load treatment history.")
		return
	}

	out := make([]dto.TreatmentHistoryDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.TreatmentHistoryDTO{
			AppointmentDate:   ap.StartTime,
			TreatmentName:     ap.Treatment.Name,
			TreatmentCategory: ap.Treatment.Category,
			DentistID:         ap.DentistID,
			Notes:             ap.Notes,
			Price:             ap.Treatment.Price,
		})
	}

	httpresp.List(c, out)
}
