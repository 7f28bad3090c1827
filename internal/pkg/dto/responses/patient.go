package responses

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
)

type Patient struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	BirthDate string `json:"birthDate"`
	Contact   string `json:"contact,omitempty"`
}

func NewPatient(patient *models.Patient) *Patient {
	if patient == nil {
		return nil
	}
	return &Patient{
		ID:        patient.ID,
		Name:      patient.Name,
		FirstName: patient.FirstName,
		BirthDate: patient.BirthDate.Format(constvars.DateLayout),
		Contact:   patient.Contact,
	}
}

func NewPatients(patients []models.Patient) []Patient {
	result := make([]Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *NewPatient(&patients[i]))
	}
	return result
}
