package medicalRecords

import (
	"clinic-service/internal/app/models"
	"cmp"
	"slices"
)

// assembleRecordView joins a stored record with its entries and the patient
// snapshot. Entries come back newest date first, then highest id first,
// whatever order the store produced them in.
func assembleRecordView(record *models.MedicalRecord, patient *models.Patient, entries []models.RecordEntry) *models.MedicalRecordView {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, compareEntriesNewestFirst)
	if sorted == nil {
		sorted = []models.RecordEntry{}
	}
	return &models.MedicalRecordView{
		Record:  *record,
		Patient: patient,
		Entries: sorted,
	}
}

func compareEntriesNewestFirst(a, b models.RecordEntry) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}
