package responses

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
)

type Appointment struct {
	ID        int64    `json:"id"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	PatientID *int64   `json:"patientId,omitempty"`
	Patient   *Patient `json:"patient,omitempty"`
}

func NewAppointment(appointment *models.Appointment, patient *models.Patient) *Appointment {
	return &Appointment{
		ID:        appointment.ID,
		Date:      appointment.Date.Format(constvars.DateLayout),
		Time:      appointment.Time,
		PatientID: appointment.PatientID,
		Patient:   NewPatient(patient),
	}
}

func NewAppointments(appointments []models.Appointment, patient *models.Patient) []Appointment {
	result := make([]Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, *NewAppointment(&appointments[i], patient))
	}
	return result
}
