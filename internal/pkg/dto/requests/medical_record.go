package requests

type CreateMedicalRecord struct {
	PatientID *int64 `json:"patientId" validate:"required,gt=0"`
	BloodType string `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies string `json:"allergies" validate:"omitempty,max=2000"`
}

type CreateRecordEntry struct {
	Date    *string `json:"date" validate:"omitempty,iso_date"`
	Type    string  `json:"type" validate:"required,entry_type"`
	Content string  `json:"content" validate:"required,not_blank"`
}
