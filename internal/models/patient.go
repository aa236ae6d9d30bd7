package models

import "time"

type Patient struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	MedicalHistory   string `gorm:"type:text" json:"medical_history"`
	Allergies        string `gorm:"type:text" json:"allergies"`
	EmergencyContact string `gorm:"size:100" json:"emergency_contact"`
	UnderTreatment   bool   `gorm:"default:false" json:"under_treatment"`
	Notes            string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
