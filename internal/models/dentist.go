package models

import "time"

type Dentist struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	StaffID uint  `gorm:"uniqueIndex" json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"staff"`

	Specialization string `gorm:"size:100" json:"specialization"`
	LicenseNumber  string `gorm:"size:50;uniqueIndex" json:"license_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
