package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `gorm:"not null;index" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	DentistID uint    `gorm:"not null;index" json:"dentist_id"`
	Dentist   Dentist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"dentist"`

	TreatmentID uint      `gorm:"not null" json:"treatment_id"`
	Treatment   Treatment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"treatment"`

	// EndTime is always StartTime plus the treatment duration at booking
	// time. The interval [StartTime, EndTime) is what conflict queries
	// compare against.
	StartTime time.Time `gorm:"not null;index" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	// Notes is an append-only log: status updates add timestamped lines,
	// nothing ever rewrites earlier entries.
	Notes string `gorm:"type:text" json:"notes"`

	CreatedByID *uint `json:"created_by_id"`
	CreatedBy   *User `gorm:"foreignKey:CreatedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"created_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
