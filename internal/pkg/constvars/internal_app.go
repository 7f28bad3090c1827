package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	ResourcePatients       = "patients"
	ResourceAppointments   = "appointments"
	ResourceMedicalRecords = "medical-records"
	ResourceEntries        = "entries"
)

const (
	MongoCollectionPatients = "patients"
	MongoCollectionCounters = "counters"
)

const (
	ServiceNamePatient       = "patient-service"
	ServiceNameAppointment   = "appointment-service"
	ServiceNameMedicalRecord = "medical-record-service"
	ServiceNameMigration     = "migration"
)

const (
	DateLayout       = "2006-01-02"
	ClockTimeLayout  = "15:04:05"
	ClockShortLayout = "15:04"
	TimestampLayout  = "2006-01-02T15:04:05Z07:00"
)

const (
	HealthStatusUp = "UP"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)
