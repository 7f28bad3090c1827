package appointments

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	PatientGateway        contracts.PatientGateway
	EventPublisher        contracts.EventPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	patientGateway contracts.PatientGateway,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		PatientGateway:        patientGateway,
		EventPublisher:        eventPublisher,
		Log:                   logger,
	}
}

// CreateAppointment validates the patient reference only when one is given.
// Nothing is stored unless the patient service confirmed the patient exists.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	date, err := utils.ParseDate(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	clock, err := utils.ParseClockTime(request.Time)
	if err != nil {
		return nil, exceptions.ErrCannotParseTime(err)
	}

	if request.PatientID != nil {
		patientID := *request.PatientID
		exists, err := uc.PatientGateway.Exists(ctx, patientID)
		if err != nil {
			uc.Log.Error("appointmentUsecase.CreateAppointment error calling PatientGateway.Exists",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingPatientIDKey, patientID),
				zap.Error(err),
			)
			return nil, err
		}
		if !exists {
			uc.Log.Info("appointmentUsecase.CreateAppointment referenced patient does not exist",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingPatientIDKey, patientID),
			)
			return nil, exceptions.ErrReferencedPatientNotExist(nil, patientID)
		}
	}

	saved, err := uc.AppointmentRepository.Save(ctx, &models.Appointment{
		Date:      date,
		Time:      clock,
		PatientID: request.PatientID,
	})
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error calling AppointmentRepository.Save",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := responses.NewAppointment(saved, nil)
	uc.publish(ctx, constvars.EventAppointmentCreated, response)

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, saved.ID),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error calling AppointmentRepository.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return responses.NewAppointments(appointments, nil), nil
}

func (uc *appointmentUsecase) FindAppointmentByID(ctx context.Context, appointmentID int64) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAppointmentByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	return responses.NewAppointment(appointment, nil), nil
}

// FindAppointmentsByPatientID requires the patient to currently exist and
// attaches its snapshot to every appointment.
func (uc *appointmentUsecase) FindAppointmentsByPatientID(ctx context.Context, patientID int64) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAppointmentsByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	outcome := uc.PatientGateway.Lookup(ctx, patientID)
	switch outcome.Status {
	case models.LookupFound:
	case models.LookupNotFound:
		return nil, exceptions.ErrReferencedPatientNotExist(nil, patientID)
	case models.LookupUnavailable:
		return nil, exceptions.ErrPatientServiceUnavailable(outcome.Cause, patientID)
	default:
		return nil, exceptions.ErrPatientLookupUnclassified(nil)
	}

	appointments, err := uc.AppointmentRepository.FindByPatientID(ctx, patientID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAppointmentsByPatientID error calling AppointmentRepository.FindByPatientID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.FindAppointmentsByPatientID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(appointments)),
	)
	return responses.NewAppointments(appointments, outcome.Patient), nil
}

// UpdateAppointment merges by presence. The patient reference is stored as
// given without asking the patient service.
func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}

	if request.Date != nil {
		date, err := utils.ParseDate(*request.Date)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		appointment.Date = date
	}
	if request.Time != nil {
		clock, err := utils.ParseClockTime(*request.Time)
		if err != nil {
			return nil, exceptions.ErrCannotParseTime(err)
		}
		appointment.Time = clock
	}
	if request.PatientID != nil {
		patientID := *request.PatientID
		appointment.PatientID = &patientID
	}

	updated, err := uc.AppointmentRepository.Update(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error calling AppointmentRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}

	uc.Log.Info("appointmentUsecase.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return responses.NewAppointment(appointment, nil), nil
}

func (uc *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.DeleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	deleted, err := uc.AppointmentRepository.DeleteByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}
	return nil
}

func (uc *appointmentUsecase) publish(ctx context.Context, routingKey string, payload interface{}) {
	err := uc.EventPublisher.Publish(ctx, routingKey, payload)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("appointmentUsecase.publish failed, continuing",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventRoutingKey, routingKey),
			zap.Error(err),
		)
	}
}
