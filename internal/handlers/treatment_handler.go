package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dentsync/clinic-api/internal/cache"
	domain "github.com/dentsync/clinic-api/internal/domain/appointment"
	"github.com/dentsync/clinic-api/internal/httperr"
	"github.com/dentsync/clinic-api/internal/models"
	ucTreatment "github.com/dentsync/clinic-api/internal/usecase/treatment"
)

const treatmentCacheTTL = 10 * time.Minute

type TreatmentHandler struct {
	db       *gorm.DB
	cache    *cache.Cache
	createUC *ucTreatment.CreateTreatment
}

func NewTreatmentHandler(
	db *gorm.DB,
	c *cache.Cache,
	createUC *ucTreatment.CreateTreatment,
) *TreatmentHandler {
	return &TreatmentHandler{db: db, cache: c, createUC: createUC}
}

// --------- Requests ---------

type CreateTreatmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_minutes" binding:"required"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

// --------- Handlers ---------

func (h *TreatmentHandler) Create(c *gin.Context) {
	var req CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	t, err := h.createUC.Execute(c.Request.Context(), ucTreatment.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    strings.ToLower(req.Category),
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeInvalidDuration):
			httperr.BadRequest(c, httperr.CodeInvalidDuration, "Duration must be positive.")
		case httperr.IsBusiness(err, httperr.CodeInvalidPrice):
			httperr.BadRequest(c, httperr.CodeInvalidPrice, "Price cannot be negative.")
		default:
			httperr.Internal(c, "failed_to_create_treatment", "Failed to create treatment.")
		}
		return
	}

	h.cache.Delete(c.Request.Context(), treatmentCacheKey(""))
	if t.Category != "" {
		h.cache.Delete(c.Request.Context(), treatmentCacheKey(t.Category))
	}

	c.JSON(http.StatusCreated, t)
}

func treatmentCacheKey(category string) string {
	if category == "" {
		return "treatments:all"
	}
	return "treatments:category:" + category
}

func (h *TreatmentHandler) List(c *gin.Context) {
	category := strings.ToLower(strings.TrimSpace(c.Query("category")))

	key := treatmentCacheKey(category)
	if cached, ok := h.cache.Get(c.Request.Context(), key); ok {
		var treatments []models.Treatment
		if err := json.Unmarshal([]byte(cached), &treatments); err == nil {
			c.JSON(http.StatusOK, treatments)
			return
		}
	}

	q := h.db.Model(&models.Treatment{})
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var treatments []models.Treatment
	if err := q.Order("name ASC").Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "Failed to list treatments.")
		return
	}

	if b, err := json.Marshal(treatments); err == nil {
		h.cache.Set(c.Request.Context(), key, string(b), treatmentCacheTTL)
	}

	c.JSON(http.StatusOK, treatments)
}

func (h *TreatmentHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var t models.Treatment
	if err := h.db.First(&t, id).Error; err != nil {
		httperr.NotFound(c, httperr.CodeTreatmentNotFound, "Treatment not found.")
		return
	}

	c.JSON(http.StatusOK, t)
}

// ======================================================
// STATISTICS
// ======================================================

type treatmentStatRow struct {
	Name    string  `json:"name"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

// Stats aggregates completed appointments per treatment over a period.
func (h *TreatmentHandler) Stats(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.BadRequest(c, "invalid_start", "start must be RFC 3339.")
		return
	}

	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.BadRequest(c, "invalid_end", "end must be RFC 3339.")
		return
	}

	var rows []treatmentStatRow
	err = h.db.
		Model(&models.Appointment{}).
		Select("treatments.name AS name, COUNT(appointments.id) AS count, SUM(treatments.price) AS revenue").
		Joins("JOIN treatments ON treatments.id = appointments.treatment_id").
		Where(
			"appointments.status = ? AND appointments.start_time >= ? AND appointments.start_time <= ?",
			string(domain.StatusCompleted), start, end,
		).
		Group("treatments.id, treatments.name").
		Scan(&rows).Error
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Failed to compute statistics.")
		return
	}

	var totalCount int64
	var totalRevenue float64
	for _, r := range rows {
		totalCount += r.Count
		totalRevenue += r.Revenue
	}

	c.JSON(http.StatusOK, gin.H{
		"total_treatments": totalCount,
		"total_revenue":    totalRevenue,
		"treatments":       rows,
	})
}
