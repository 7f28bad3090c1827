package queries

const (
	CreateAppointmentQuery = `
		INSERT INTO appointments (appointment_date, appointment_time, patient_id, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id
	`

	UpdateAppointmentQuery = `
		UPDATE appointments
		SET appointment_date = $2, appointment_time = $3, patient_id = $4, updated_at = NOW()
		WHERE id = $1
	`

	FindAppointmentByIDQuery = `
		SELECT id, appointment_date, appointment_time::text, patient_id
		FROM appointments
		WHERE id = $1
	`

	FindAppointmentsByPatientIDQuery = `
		SELECT id, appointment_date, appointment_time::text, patient_id
		FROM appointments
		WHERE patient_id = $1
		ORDER BY appointment_date, appointment_time, id
	`

	FindAllAppointmentsQuery = `
		SELECT id, appointment_date, appointment_time::text, patient_id
		FROM appointments
		ORDER BY appointment_date, appointment_time, id
	`

	DeleteAppointmentByIDQuery = `
		DELETE FROM appointments WHERE id = $1
	`
)
