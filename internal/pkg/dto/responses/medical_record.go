package responses

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
)

type MedicalRecord struct {
	ID        int64         `json:"id"`
	PatientID int64         `json:"patientId"`
	BloodType string        `json:"bloodType,omitempty"`
	Allergies string        `json:"allergies,omitempty"`
	CreatedAt string        `json:"createdAt"`
	UpdatedAt string        `json:"updatedAt"`
	Patient   *Patient      `json:"patient,omitempty"`
	Entries   []RecordEntry `json:"entries"`
}

type RecordEntry struct {
	ID      int64  `json:"id"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

func NewMedicalRecord(view *models.MedicalRecordView) *MedicalRecord {
	return &MedicalRecord{
		ID:        view.Record.ID,
		PatientID: view.Record.PatientID,
		BloodType: view.Record.BloodType,
		Allergies: view.Record.Allergies,
		CreatedAt: view.Record.CreatedAt.Format(constvars.TimestampLayout),
		UpdatedAt: view.Record.UpdatedAt.Format(constvars.TimestampLayout),
		Patient:   NewPatient(view.Patient),
		Entries:   NewRecordEntries(view.Entries),
	}
}

func NewRecordEntry(entry *models.RecordEntry) *RecordEntry {
	return &RecordEntry{
		ID:      entry.ID,
		Date:    entry.Date.Format(constvars.DateLayout),
		Type:    string(entry.Type),
		Content: entry.Content,
	}
}

func NewRecordEntries(entries []models.RecordEntry) []RecordEntry {
	result := make([]RecordEntry, 0, len(entries))
	for i := range entries {
		result = append(result, *NewRecordEntry(&entries[i]))
	}
	return result
}
