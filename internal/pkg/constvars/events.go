package constvars

const (
	EventExchangeDefault = "clinic.events"

	EventAppointmentCreated   = "appointment.created"
	EventMedicalRecordCreated = "medical_record.created"
	EventRecordEntryAdded     = "record_entry.added"
)

const (
	LockKeyMedicalRecordCreationFormat = "lock:medical_record:create:%d"
)
