package queries

const (
	CreateMedicalRecordQuery = `
		INSERT INTO medical_records (patient_id, blood_type, allergies, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	FindMedicalRecordByIDQuery = `
		SELECT id, patient_id, blood_type, allergies, created_at, updated_at
		FROM medical_records
		WHERE id = $1
	`

	FindMedicalRecordByPatientIDQuery = `
		SELECT id, patient_id, blood_type, allergies, created_at, updated_at
		FROM medical_records
		WHERE patient_id = $1
	`

	ExistsMedicalRecordByPatientIDQuery = `
		SELECT EXISTS (SELECT 1 FROM medical_records WHERE patient_id = $1)
	`

	FindAllMedicalRecordsQuery = `
		SELECT id, patient_id, blood_type, allergies, created_at, updated_at
		FROM medical_records
		ORDER BY id
	`

	DeleteMedicalRecordByIDQuery = `
		DELETE FROM medical_records WHERE id = $1
	`

	TouchMedicalRecordQuery = `
		UPDATE medical_records SET updated_at = NOW() WHERE id = $1
	`
)
