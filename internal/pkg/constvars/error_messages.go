package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"gt":         "must be greater than %s",
	"max":        "maximum at %s characters long",
	"oneof":      "must be one of [%s]",
	"iso_date":   "must be a date formatted as YYYY-MM-DD",
	"clock_time": "must be a time formatted as HH:MM or HH:MM:SS",
	"entry_type": "must be one of [CONSULTATION, DIAGNOSIS, PRESCRIPTION, LAB_RESULT, VACCINATION, ALLERGY, NOTE]",
	"not_blank":  "must not be blank",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"gt":    true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest            = "failed to process your request"
	ErrClientSomethingWrongWithApplication   = "something wrong with application"
	ErrClientServerLongRespond               = "the app taking too long to respond"
	ErrClientPatientDoesNotExist             = "referenced patient does not exist"
	ErrClientPatientNotFound                 = "patient not found"
	ErrClientPatientServiceUnavailable       = "patient service is temporarily unavailable, please retry later"
	ErrClientAppointmentNotFound             = "appointment not found"
	ErrClientMedicalRecordNotFound           = "medical record not found"
	ErrClientMedicalRecordAlreadyExists      = "medical record already exists for patient"
	ErrClientMedicalRecordCreationInProgress = "medical record for patient is being created, retry shortly"
	ErrClientPatientIDRequired               = "patientId is required"
	ErrClientEntryTypeAndContentRequired     = "type and content are required"
	ErrClientInvalidEntryType                = "type is not a known record entry type"
)

// Error messages for developers
const (
	ErrDevInvalidInput                = "invalid input"
	ErrDevValidationFailed            = "input validation failed"
	ErrDevCannotParseJSON             = "failed to parse JSON"
	ErrDevCannotMarshalJSON           = "failed to marshal JSON"
	ErrDevCannotParseDate             = "failed to parse date"
	ErrDevCannotParseTime             = "failed to parse time"
	ErrDevURLParamIDValidationFailed  = "failed to validate URL param %s"
	ErrDevServerDeadlineExceeded      = "deadline exceeded"
	ErrDevServerPanic                 = "recovered from panic"
	ErrDevCreateHTTPRequest           = "failed to create HTTP request"
	ErrDevSendHTTPRequest             = "failed to send HTTP request"
	ErrDevDecodeResponse              = "failed to decode %s response"
	ErrDevRemoteUnexpectedStatus      = "unexpected status %d from %s"
	ErrDevRemotePatientNotFound       = "patient %d does not exist in patient service"
	ErrDevRemoteRateLimitWait         = "outbound rate limiter wait failed"
	ErrDevPatientLookupNotFound       = "patient %d not found by lookup"
	ErrDevPatientServiceUnavailable   = "patient service unavailable while fetching patient id=%d"
	ErrDevPatientLookupUnclassified   = "patient lookup returned an unclassified outcome"
	ErrDevPatientIDRequired           = "patient id is required"
	ErrDevEntryTypeAndContentRequired = "entry type and non-blank content are required"
	ErrDevInvalidEntryType            = "unknown record entry type %q"
	ErrDevAppointmentNotFound         = "appointment %d not found"
	ErrDevMedicalRecordNotFound       = "medical record not found"
	ErrDevMedicalRecordAlreadyExists  = "medical record already exists for patient %d"
	ErrDevMedicalRecordCreationLocked = "medical record creation already in progress for patient %d"
	ErrDevPatientNotFound             = "patient %d not found"
	ErrDevDBFailedToFindData          = "failed to find data in database"
	ErrDevDBFailedToInsertData        = "failed to insert data into database"
	ErrDevDBFailedToUpdateData        = "failed to update data in database"
	ErrDevDBFailedToDeleteData        = "failed to delete data from database"
	ErrDevDBFailedToIterateDataset    = "failed to iterate dataset"
	ErrDevDBFailedToFindDocument      = "failed to find document"
	ErrDevDBFailedToInsertDocument    = "failed to insert document"
	ErrDevDBFailedToUpdateDocument    = "failed to update document"
	ErrDevDBFailedToDeleteDocument    = "failed to delete document"
	ErrDevDBFailedToIterateDocuments  = "failed to iterate documents"
	ErrDevDBFailedToGenerateSequence  = "failed to generate sequence for %s"
	ErrDevRedisSetData                = "failed to set data in redis"
	ErrDevRedisDeleteData             = "failed to delete data from redis"
	ErrDevRedisUnlock                 = "failed to release redis lock"
	ErrDevRabbitMQPublishMessage      = "failed to publish message to exchange %s"
)
