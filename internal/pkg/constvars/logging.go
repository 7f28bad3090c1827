package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingResponseLengthKey = "response_length"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingURLKey            = "url"
	LoggingServiceKey        = "service"
	LoggingVersionKey        = "version"

	LoggingPatientIDKey       = "patient_id"
	LoggingAppointmentIDKey   = "appointment_id"
	LoggingMedicalRecordIDKey = "medical_record_id"
	LoggingRecordEntryIDKey   = "record_entry_id"
	LoggingEntryTypeKey       = "entry_type"
	LoggingCountKey           = "count"

	LoggingLookupStatusKey = "lookup_status"
	LoggingBreakerNameKey  = "breaker_name"
	LoggingBreakerStateKey = "breaker_state"
	LoggingBreakerFromKey  = "breaker_from"
	LoggingBreakerToKey    = "breaker_to"

	LoggingRedisKey              = "redis_key"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingEventRoutingKey       = "routing_key"
	LoggingEventExchangeKey      = "exchange"
)
