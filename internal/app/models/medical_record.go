package models

import "time"

type MedicalRecord struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patientId"`
	BloodType string    `json:"bloodType"`
	Allergies string    `json:"allergies"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MedicalRecordView is a record together with its entries, newest first, and
// the patient snapshot it was resolved against.
type MedicalRecordView struct {
	Record  MedicalRecord
	Patient *Patient
	Entries []RecordEntry
}
