package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	dentistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid dentist id.")
		return
	}

	var hours []models.DentistSchedule
	if err := h.db.
		Where("dentist_id = ?", dentistID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Failed to load working hours.")
		return
	}

	c.JSON(http.StatusOK, hours)
}

// Update replaces the whole weekly configuration of a dentist in one call.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	dentistID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid dentist id.")
		return
	}

	var dentist models.Dentist
	if err := h.db.First(&dentist, dentistID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeDentistNotFound, "Dentist not found.")
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if err := h.db.
		Where("dentist_id = ?", dentistID).
		Delete(&models.DentistSchedule{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_hours", "Failed to update working hours.")
		return
	}

	var toCreate []models.DentistSchedule
	for _, d := range req.Days {
		toCreate = append(toCreate, models.DentistSchedule{
			DentistID: uint(dentistID),
			Weekday:   d.Weekday,
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_working_hours", "Failed to update working hours.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
