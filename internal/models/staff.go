package models

import "time"

type Staff struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	Position  string    `gorm:"size:50;not null" json:"position"`
	HireDate  time.Time `json:"hire_date"`
	IsCurrent bool      `gorm:"default:true" json:"is_current"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
