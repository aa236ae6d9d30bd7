package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/models"
)

type DentistHandler struct {
	db *gorm.DB
}

func NewDentistHandler(db *gorm.DB) *DentistHandler {
	return &DentistHandler{db: db}
}

// --------- Requests ---------

type CreateDentistRequest struct {
	StaffID        uint   `json:"staff_id" binding:"required"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"license_number" binding:"required"`
}

// --------- Handlers ---------

func (h *DentistHandler) Create(c *gin.Context) {
	var req CreateDentistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var staff models.Staff
	if err := h.db.First(&staff, req.StaffID).Error; err != nil {
		httperr.NotFound(c, "staff_not_found", "Staff record not found.")
		return
	}

	dentist := models.Dentist{
		StaffID:        req.StaffID,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
	}

	if err := h.db.Create(&dentist).Error; err != nil {
		httperr.Internal(c, "failed_to_create_dentist", "Failed to create dentist.")
		return
	}

	c.JSON(http.StatusCreated, dentist)
}

func (h *DentistHandler) List(c *gin.Context) {
	var dentists []models.Dentist
	if err := h.db.
		Preload("Staff.User").
		Order("id ASC").
		Find(&dentists).Error; err != nil {

		httperr.Internal(c, "failed_to_list_dentists", "Failed to list dentists.")
		return
	}

	c.JSON(http.StatusOK, dentists)
}

func (h *DentistHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var dentist models.Dentist
	if err := h.db.Preload("Staff.User").First(&dentist, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeDentistNotFound, "Dentist not found.")
		return
	}

	c.JSON(http.StatusOK, dentist)
}
