package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type CreateStaffRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	Position string `json:"position" binding:"required"`
	HireDate string `json:"hire_date"`
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var user models.User
	if err := h.db.First(&user, req.UserID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "User account not found.")
		return
	}

	hireDate := time.Now()
	if req.HireDate != "" {
		parsed, err := time.Parse("2006-01-02", req.HireDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_hire_date", "hire_date must be YYYY-MM-DD.")
			return
		}
		hireDate = parsed
	}

	staff := models.Staff{
		UserID:    req.UserID,
		Position:  req.Position,
		HireDate:  hireDate,
		IsCurrent: true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Failed to create staff record.")
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) List(c *gin.Context) {
	var staff []models.Staff
	if err := h.db.
		Preload("User").
		Where("is_current = ?", true).
		Order("id ASC").
		Find(&staff).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Failed to list staff.")
		return
	}

	c.JSON(http.StatusOK, staff)
}
