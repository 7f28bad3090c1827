package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	CreatePatientSuccessMessage = "patient created successfully"
	GetPatientSuccessMessage    = "patient retrieved successfully"
	UpdatePatientSuccessMessage = "patient updated successfully"
	DeletePatientSuccessMessage = "patient deleted successfully"

	CreateAppointmentSuccessMessage = "appointment created successfully"
	GetAppointmentSuccessMessage    = "appointment retrieved successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"

	CreateMedicalRecordSuccessMessage = "medical record created successfully"
	GetMedicalRecordSuccessMessage    = "medical record retrieved successfully"
	CreateRecordEntrySuccessMessage   = "record entry created successfully"

	GetBreakerStateSuccessMessage = "breaker state retrieved successfully"
	HealthCheckSuccessMessage     = "service is healthy"
)
