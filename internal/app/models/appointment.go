package models

import "time"

type Appointment struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Time      string    `json:"time"`
	PatientID *int64    `json:"patientId,omitempty"`
}
