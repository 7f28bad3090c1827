package medicalRecords

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
)

type medicalRecordUsecase struct {
	MedicalRecordRepository contracts.MedicalRecordRepository
	RecordEntryRepository   contracts.RecordEntryRepository
	PatientGateway          contracts.PatientGateway
	LockService             contracts.LockerService
	EventPublisher          contracts.EventPublisher
	LockerConfig            config.AppLocker
	Now                     func() time.Time
	Log                     *zap.Logger
}

// NewMedicalRecordUsecase accepts a nil lockService, in which case record
// creation is serialized by the store constraint alone.
func NewMedicalRecordUsecase(
	medicalRecordRepository contracts.MedicalRecordRepository,
	recordEntryRepository contracts.RecordEntryRepository,
	patientGateway contracts.PatientGateway,
	lockService contracts.LockerService,
	eventPublisher contracts.EventPublisher,
	lockerConfig config.AppLocker,
	logger *zap.Logger,
) contracts.MedicalRecordUsecase {
	return &medicalRecordUsecase{
		MedicalRecordRepository: medicalRecordRepository,
		RecordEntryRepository:   recordEntryRepository,
		PatientGateway:          patientGateway,
		LockService:             lockService,
		EventPublisher:          eventPublisher,
		LockerConfig:            lockerConfig,
		Now:                     time.Now,
		Log:                     logger,
	}
}

// CreateMedicalRecord checks the patient remotely before the local uniqueness
// check. A duplicate that slips past the check is still rejected by the store.
func (uc *medicalRecordUsecase) CreateMedicalRecord(ctx context.Context, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request == nil || request.PatientID == nil {
		return nil, exceptions.ErrPatientIDRequired(nil)
	}
	patientID := *request.PatientID

	_, err := uc.resolveReferencedPatient(ctx, patientID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.CreateMedicalRecord error resolving patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	release, err := uc.acquireCreationLock(ctx, patientID)
	if err != nil {
		return nil, err
	}
	defer release()

	exists, err := uc.MedicalRecordRepository.ExistsByPatientID(ctx, patientID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.CreateMedicalRecord error calling MedicalRecordRepository.ExistsByPatientID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if exists {
		uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord record already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, exceptions.ErrMedicalRecordAlreadyExists(nil, patientID)
	}

	saved, err := uc.MedicalRecordRepository.Save(ctx, &models.MedicalRecord{
		PatientID: patientID,
		BloodType: strings.TrimSpace(request.BloodType),
		Allergies: request.Allergies,
	})
	if err != nil {
		if errors.Is(err, exceptions.ErrUniqueViolation) {
			uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord lost creation race",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingPatientIDKey, patientID),
			)
			return nil, exceptions.ErrMedicalRecordAlreadyExists(err, patientID)
		}
		uc.Log.Error("medicalRecordUsecase.CreateMedicalRecord error calling MedicalRecordRepository.Save",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.publish(ctx, constvars.EventMedicalRecordCreated, responses.NewMedicalRecord(assembleRecordView(saved, nil, nil)))

	// The record is committed at this point. A failed second lookup still
	// fails the request.
	patient, err := uc.resolveReferencedPatient(ctx, patientID)
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.CreateMedicalRecord record stored but response enrichment failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingMedicalRecordIDKey, saved.ID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := uc.buildResponse(ctx, saved, patient)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("medicalRecordUsecase.CreateMedicalRecord succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMedicalRecordIDKey, saved.ID),
	)
	return response, nil
}

// FindAll lists every record with its entries. Patient snapshots are not
// attached so listing never depends on the patient service.
func (uc *medicalRecordUsecase) FindAll(ctx context.Context) ([]responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	records, err := uc.MedicalRecordRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.MedicalRecord, 0, len(records))
	for i := range records {
		response, err := uc.buildResponse(ctx, &records[i], nil)
		if err != nil {
			return nil, err
		}
		result = append(result, *response)
	}

	uc.Log.Info("medicalRecordUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	return result, nil
}

func (uc *medicalRecordUsecase) FindMedicalRecordByPatientID(ctx context.Context, patientID int64) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.FindMedicalRecordByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.resolveOwningPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	record, err := uc.MedicalRecordRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}
	return uc.buildResponse(ctx, record, patient)
}

func (uc *medicalRecordUsecase) FindMedicalRecordByID(ctx context.Context, recordID int64) (*responses.MedicalRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.FindMedicalRecordByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMedicalRecordIDKey, recordID),
	)

	record, err := uc.MedicalRecordRepository.FindByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}

	patient, err := uc.resolveOwningPatient(ctx, record.PatientID)
	if err != nil {
		return nil, err
	}
	return uc.buildResponse(ctx, record, patient)
}

// AddEntryByPatientID trusts the patient validation done when the record was
// created and makes no remote call.
func (uc *medicalRecordUsecase) AddEntryByPatientID(ctx context.Context, patientID int64, request *requests.CreateRecordEntry) (*responses.RecordEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.AddEntryByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if patientID <= 0 {
		return nil, exceptions.ErrPatientIDRequired(nil)
	}
	if request == nil || request.Type == "" || strings.TrimSpace(request.Content) == "" {
		return nil, exceptions.ErrEntryTypeAndContentRequired(nil)
	}
	entryType := models.RecordEntryType(request.Type)
	if !entryType.IsValid() {
		return nil, exceptions.ErrInvalidEntryType(nil, request.Type)
	}

	entryDate := utils.Today(uc.Now)
	if request.Date != nil {
		parsed, err := utils.ParseDate(*request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		entryDate = parsed
	}

	record, err := uc.MedicalRecordRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrMedicalRecordNotFound(nil)
	}

	saved, err := uc.RecordEntryRepository.Save(ctx, &models.RecordEntry{
		RecordID: record.ID,
		Date:     entryDate,
		Type:     entryType,
		Content:  request.Content,
	})
	if err != nil {
		uc.Log.Error("medicalRecordUsecase.AddEntryByPatientID error calling RecordEntryRepository.Save",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := responses.NewRecordEntry(saved)
	uc.publish(ctx, constvars.EventRecordEntryAdded, response)

	uc.Log.Info("medicalRecordUsecase.AddEntryByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingRecordEntryIDKey, saved.ID),
	)
	return response, nil
}

func (uc *medicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, recordID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("medicalRecordUsecase.DeleteMedicalRecord called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingMedicalRecordIDKey, recordID),
	)

	deleted, err := uc.MedicalRecordRepository.DeleteByID(ctx, recordID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrMedicalRecordNotFound(nil)
	}
	return nil
}

// resolveReferencedPatient is used on the write path, where a missing patient
// is the caller's input mistake.
func (uc *medicalRecordUsecase) resolveReferencedPatient(ctx context.Context, patientID int64) (*models.Patient, error) {
	outcome := uc.PatientGateway.Lookup(ctx, patientID)
	switch outcome.Status {
	case models.LookupFound:
		return outcome.Patient, nil
	case models.LookupNotFound:
		return nil, exceptions.ErrReferencedPatientNotExist(nil, patientID)
	case models.LookupUnavailable:
		return nil, exceptions.ErrPatientServiceUnavailable(outcome.Cause, patientID)
	default:
		return nil, exceptions.ErrPatientLookupUnclassified(nil)
	}
}

// resolveOwningPatient is used on the read path, where a missing patient means
// there is nothing to show.
func (uc *medicalRecordUsecase) resolveOwningPatient(ctx context.Context, patientID int64) (*models.Patient, error) {
	outcome := uc.PatientGateway.Lookup(ctx, patientID)
	switch outcome.Status {
	case models.LookupFound:
		return outcome.Patient, nil
	case models.LookupNotFound:
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	case models.LookupUnavailable:
		return nil, exceptions.ErrPatientServiceUnavailable(outcome.Cause, patientID)
	default:
		return nil, exceptions.ErrPatientLookupUnclassified(nil)
	}
}

func (uc *medicalRecordUsecase) buildResponse(ctx context.Context, record *models.MedicalRecord, patient *models.Patient) (*responses.MedicalRecord, error) {
	entries, err := uc.RecordEntryRepository.FindByRecordIDOrderByDateDescIDDesc(ctx, record.ID)
	if err != nil {
		return nil, err
	}
	return responses.NewMedicalRecord(assembleRecordView(record, patient, entries)), nil
}

// acquireCreationLock returns a release func that is always safe to call. A
// lock held by another request is a retryable conflict: the holder may still
// fail, so the caller is told a creation is in progress, not that a record
// exists. An unreachable lock store only costs the fast path.
func (uc *medicalRecordUsecase) acquireCreationLock(ctx context.Context, patientID int64) (func(), error) {
	noop := func() {}
	if uc.LockService == nil || !uc.LockerConfig.Enabled {
		return noop, nil
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	key := fmt.Sprintf(constvars.LockKeyMedicalRecordCreationFormat, patientID)
	expiration := time.Duration(uc.LockerConfig.ExpirationInSeconds) * time.Second

	acquired, lockValue, err := uc.LockService.TryLock(ctx, key, expiration)
	if err != nil {
		uc.Log.Warn("medicalRecordUsecase.acquireCreationLock lock store unavailable, relying on store constraint",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return noop, nil
	}
	if !acquired {
		uc.Log.Info("medicalRecordUsecase.acquireCreationLock creation already in progress",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
		return nil, exceptions.ErrMedicalRecordCreationLocked(nil, patientID)
	}

	return func() {
		// the request context may already be done
		unlockCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), expiration)
		defer cancel()
		err := uc.LockService.Unlock(unlockCtx, key, lockValue)
		if err != nil {
			uc.Log.Warn("medicalRecordUsecase.acquireCreationLock failed to release lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, key),
				zap.Error(err),
			)
		}
	}, nil
}

func (uc *medicalRecordUsecase) publish(ctx context.Context, routingKey string, payload interface{}) {
	err := uc.EventPublisher.Publish(ctx, routingKey, payload)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("medicalRecordUsecase.publish failed, continuing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventRoutingKey, routingKey),
			zap.Error(err),
		)
	}
}
