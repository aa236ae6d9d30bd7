package dto

import "time"

type TreatmentHistoryDTO struct {
	AppointmentDate   time.Time `json:"appointment_date"`
	TreatmentName     string    `json:"treatment_name"`
	TreatmentCategory string    `json:"treatment_category"`
	DentistID         uint      `json:"dentist_id"`
	Notes             string    `json:"notes"`
	Price             float64   `json:"price"`
}
