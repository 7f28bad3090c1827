package requests

type CreateAppointment struct {
	Date      string `json:"date" validate:"required,iso_date"`
	Time      string `json:"time" validate:"required,clock_time"`
	PatientID *int64 `json:"patientId" validate:"omitempty,gt=0"`
}

// UpdateAppointment carries a partial update. Absent fields keep their stored value.
type UpdateAppointment struct {
	Date      *string `json:"date" validate:"omitempty,iso_date"`
	Time      *string `json:"time" validate:"omitempty,clock_time"`
	PatientID *int64  `json:"patientId" validate:"omitempty,gt=0"`
}
