package requests

type CreatePatient struct {
	Name      string `json:"name" validate:"required,not_blank,max=100"`
	FirstName string `json:"firstName" validate:"required,not_blank,max=100"`
	BirthDate string `json:"birthDate" validate:"required,iso_date"`
	Contact   string `json:"contact" validate:"omitempty,max=255"`
}

// UpdatePatient replaces every field of the stored patient.
type UpdatePatient struct {
	Name      string `json:"name" validate:"required,not_blank,max=100"`
	FirstName string `json:"firstName" validate:"required,not_blank,max=100"`
	BirthDate string `json:"birthDate" validate:"required,iso_date"`
	Contact   string `json:"contact" validate:"omitempty,max=255"`
}
