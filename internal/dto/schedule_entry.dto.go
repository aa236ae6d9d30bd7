package dto

import "time"

type ScheduleEntryDTO struct {
	ID            uint      `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	PatientID     uint      `json:"patient_id"`
	PatientName   string    `json:"patient_name"`
	TreatmentName string    `json:"treatment_name"`
}
