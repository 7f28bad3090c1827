package models

import "time"

type RecordEntryType string

const (
	RecordEntryConsultation RecordEntryType = "CONSULTATION"
	RecordEntryDiagnosis    RecordEntryType = "DIAGNOSIS"
	RecordEntryPrescription RecordEntryType = "PRESCRIPTION"
	RecordEntryLabResult    RecordEntryType = "LAB_RESULT"
	RecordEntryVaccination  RecordEntryType = "VACCINATION"
	RecordEntryAllergy      RecordEntryType = "ALLERGY"
	RecordEntryNote         RecordEntryType = "NOTE"
)

var recordEntryTypes = map[RecordEntryType]struct{}{
	RecordEntryConsultation: {},
	RecordEntryDiagnosis:    {},
	RecordEntryPrescription: {},
	RecordEntryLabResult:    {},
	RecordEntryVaccination:  {},
	RecordEntryAllergy:      {},
	RecordEntryNote:         {},
}

func (t RecordEntryType) IsValid() bool {
	_, ok := recordEntryTypes[t]
	return ok
}

// RecordEntry belongs to exactly one MedicalRecord and is append-only.
type RecordEntry struct {
	ID       int64           `json:"id"`
	RecordID int64           `json:"recordId"`
	Date     time.Time       `json:"date"`
	Type     RecordEntryType `json:"type"`
	Content  string          `json:"content"`
}
