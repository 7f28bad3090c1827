package exceptions

import (
	"clinic-service/internal/pkg/constvars"
	"fmt"
)

var (
	// Input
	ErrURLParamIDValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInput, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamIDValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInput, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInput, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInput, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInput, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}
	ErrPatientIDRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInput, constvars.ErrClientPatientIDRequired, constvars.ErrDevPatientIDRequired)
	}
	ErrEntryTypeAndContentRequired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInput, constvars.ErrClientEntryTypeAndContentRequired, constvars.ErrDevEntryTypeAndContentRequired)
	}
	ErrInvalidEntryType = func(err error, entryType string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInput, constvars.ErrClientInvalidEntryType, fmt.Sprintf(constvars.ErrDevInvalidEntryType, entryType))
	}
	ErrReferencedPatientNotExist = func(err error, patientID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, KindInput, constvars.ErrClientPatientDoesNotExist, fmt.Sprintf(constvars.ErrDevPatientLookupNotFound, patientID))
	}

	// Conflict
	ErrMedicalRecordAlreadyExists = func(err error, patientID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, KindConflict, constvars.ErrClientMedicalRecordAlreadyExists, fmt.Sprintf(constvars.ErrDevMedicalRecordAlreadyExists, patientID))
	}
	ErrMedicalRecordCreationLocked = func(err error, patientID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, KindConflict, constvars.ErrClientMedicalRecordCreationInProgress, fmt.Sprintf(constvars.ErrDevMedicalRecordCreationLocked, patientID))
	}

	// Dependency unavailable
	ErrPatientServiceUnavailable = func(err error, patientID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, KindDependencyUnavailable, constvars.ErrClientPatientServiceUnavailable, fmt.Sprintf(constvars.ErrDevPatientServiceUnavailable, patientID))
	}

	// Not found
	ErrPatientNotFound = func(err error, patientID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevPatientNotFound, patientID))
	}
	ErrAppointmentNotFound = func(err error, appointmentID int64) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientAppointmentNotFound, fmt.Sprintf(constvars.ErrDevAppointmentNotFound, appointmentID))
	}
	ErrMedicalRecordNotFound = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, KindNotFound, constvars.ErrClientMedicalRecordNotFound, constvars.ErrDevMedicalRecordNotFound)
	}

	// Internal
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, KindInternal, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerPanic = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerPanic)
	}
	ErrPatientLookupUnclassified = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPatientLookupUnclassified)
	}

	// Postgres DB
	ErrPostgresDBFindData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindData)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertData)
	}
	ErrPostgresDBUpdateData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrPostgresDBDeleteData = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteData)
	}
	ErrPostgresDBIterateDataset = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDataset)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBGenerateSequence = func(err error, collection string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevDBFailedToGenerateSequence, collection))
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, exchange string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, exchange))
	}

	// HTTP (outbound). These are transport failures: the caller learns nothing
	// about whether the remote entity exists.
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, KindDependencyUnavailable, constvars.ErrClientPatientServiceUnavailable, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, KindDependencyUnavailable, constvars.ErrClientPatientServiceUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrRemoteRateLimitWait = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, KindDependencyUnavailable, constvars.ErrClientPatientServiceUnavailable, constvars.ErrDevRemoteRateLimitWait)
	}
	ErrRemoteUnexpectedStatus = func(err error, statusCode int, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, KindDependencyUnavailable, constvars.ErrClientPatientServiceUnavailable, fmt.Sprintf(constvars.ErrDevRemoteUnexpectedStatus, statusCode, resource))
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, KindDependencyUnavailable, constvars.ErrClientPatientServiceUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrRemotePatientNotFound = func(patientID int64) *CustomError {
		return BuildNewCustomError(ErrRemoteEntityNotFound, constvars.StatusNotFound, KindNotFound, constvars.ErrClientPatientNotFound, fmt.Sprintf(constvars.ErrDevRemotePatientNotFound, patientID))
	}
)
