package db

import (
	"log"
	"time"

	"github.com/dentsync/clinic-api/internal/config"
	"github.com/dentsync/clinic-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.Staff{},
		&models.Dentist{},
		&models.Treatment{},
		&models.DentistSchedule{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Storage-level backstop for the no-double-booking invariant: even if
	// two bookings race past the application check, Postgres rejects the
	// second insert with an exclusion violation (SQLSTATE 23P01).
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        ALTER TABLE appointments
        ADD CONSTRAINT appointments_no_overlap
        EXCLUDE USING gist (
            dentist_id WITH =,
            tstzrange(start_time, end_time) WITH &&
        )
        WHERE (status IN ('scheduled', 'confirmed'))
    `)

	return db
}
