package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dentsync/clinic-api/internal/audit"
	"github.com/dentsync/clinic-api/internal/cache"
	"github.com/dentsync/clinic-api/internal/config"
	"github.com/dentsync/clinic-api/internal/handlers"
	infraRepo "github.com/dentsync/clinic-api/internal/infra/repository"
	"github.com/dentsync/clinic-api/internal/middleware"
	ucAppointment "github.com/dentsync/clinic-api/internal/usecase/appointment"
	ucTreatment "github.com/dentsync/clinic-api/internal/usecase/treatment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, redisCache *cache.Cache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	treatmentRepo := infraRepo.NewTreatmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	scheduleUC := ucAppointment.NewScheduleAppointment(appointmentRepo, auditDispatcher)
	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(appointmentRepo, auditDispatcher)
	getScheduleUC := ucAppointment.NewGetDentistSchedule(appointmentRepo)
	hasConflictUC := ucAppointment.NewHasConflict(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createTreatmentUC := ucTreatment.NewCreateTreatment(treatmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		scheduleUC,
		updateStatusUC,
		getScheduleUC,
		hasConflictUC,
		availabilityUC,
	)

	treatmentHandler := handlers.NewTreatmentHandler(db, redisCache, createTreatmentUC)
	patientHandler := handlers.NewPatientHandler(db)
	dentistHandler := handlers.NewDentistHandler(db)
	staffHandler := handlers.NewStaffHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.GET("/dentists/:id/schedule", appointmentHandler.DentistSchedule)
			secured.GET("/dentists/:id/availability", appointmentHandler.Availability)

			// ------------------------------
			// CATALOG / PROFILES
			// ------------------------------
			secured.POST("/treatments", treatmentHandler.Create)
			secured.GET("/treatments", treatmentHandler.List)
			secured.GET("/treatments/stats", treatmentHandler.Stats)
			secured.GET("/treatments/:id", treatmentHandler.Get)

			secured.POST("/patients", patientHandler.Register)
			secured.GET("/patients", patientHandler.Search)
			secured.GET("/patients/:id/history", patientHandler.History)

			secured.POST("/staff", staffHandler.Create)
			secured.GET("/staff", staffHandler.List)

			secured.POST("/dentists", dentistHandler.Create)
			secured.GET("/dentists", dentistHandler.List)
			secured.GET("/dentists/:id", dentistHandler.Get)

			secured.GET("/dentists/:id/working-hours", workingHoursHandler.Get)
			secured.PUT("/dentists/:id/working-hours", workingHoursHandler.Update)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
