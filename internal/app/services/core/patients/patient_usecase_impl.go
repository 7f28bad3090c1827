package patients

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"strings"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patient, err := buildPatient(request.Name, request.FirstName, request.BirthDate, request.Contact)
	if err != nil {
		return nil, err
	}

	saved, err := uc.PatientRepository.Save(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.CreatePatient error calling PatientRepository.Save",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.CreatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, saved.ID),
	)
	return responses.NewPatient(saved), nil
}

func (uc *patientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return responses.NewPatients(patients), nil
}

// FindPatientByID answers not found for an unknown id. Remote lookups in the
// other services depend on that status.
func (uc *patientUsecase) FindPatientByID(ctx context.Context, patientID int64) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	return responses.NewPatient(patient), nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID int64, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := buildPatient(request.Name, request.FirstName, request.BirthDate, request.Contact)
	if err != nil {
		return nil, err
	}
	patient.ID = patientID

	updated, err := uc.PatientRepository.Update(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.UpdatePatient error calling PatientRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}

	uc.Log.Info("patientUsecase.UpdatePatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return responses.NewPatient(patient), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	deleted, err := uc.PatientRepository.DeleteByID(ctx, patientID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrPatientNotFound(nil, patientID)
	}
	return nil
}

func buildPatient(name, firstName, birthDate, contact string) (*models.Patient, error) {
	parsed, err := utils.ParseDate(birthDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	return &models.Patient{
		Name:      strings.TrimSpace(name),
		FirstName: strings.TrimSpace(firstName),
		BirthDate: parsed,
		Contact:   strings.TrimSpace(contact),
	}, nil
}
