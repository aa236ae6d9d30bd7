package models

import "time"

// DentistSchedule holds the weekly working hours of a dentist. It feeds the
// availability listing only; booking itself never gates on it.
type DentistSchedule struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	DentistID uint `gorm:"not null;index" json:"dentist_id"`

	Weekday int `json:"weekday"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
