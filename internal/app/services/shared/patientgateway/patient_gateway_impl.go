package patientgateway

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

var errEmptyPatient = errors.New("patient client returned no patient and no error")

type patientGateway struct {
	Client  contracts.PatientClient
	Breaker *gobreaker.CircuitBreaker[*models.Patient]
	Log     *zap.Logger
}

func NewPatientGateway(client contracts.PatientClient, breaker *gobreaker.CircuitBreaker[*models.Patient], logger *zap.Logger) contracts.PatientGateway {
	return &patientGateway{
		Client:  client,
		Breaker: breaker,
		Log:     logger,
	}
}

// Lookup never retries. While the breaker is open the client is not called.
func (g *patientGateway) Lookup(ctx context.Context, patientID int64) models.LookupOutcome {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Info("patientGateway.Lookup called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingBreakerStateKey, g.Breaker.State().String()),
	)

	patient, err := g.Breaker.Execute(func() (*models.Patient, error) {
		return g.Client.FindPatientByID(ctx, patientID)
	})

	outcome := classify(patient, err)
	switch outcome.Status {
	case models.LookupFound, models.LookupNotFound:
		g.Log.Info("patientGateway.Lookup succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.Stringer(constvars.LoggingLookupStatusKey, outcome.Status),
		)
	default:
		g.Log.Error("patientGateway.Lookup patient service unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
			zap.String(constvars.LoggingBreakerStateKey, g.Breaker.State().String()),
			zap.Error(outcome.Cause),
		)
	}
	return outcome
}

// Exists reports an unreachable patient service as an error, never as false.
func (g *patientGateway) Exists(ctx context.Context, patientID int64) (bool, error) {
	outcome := g.Lookup(ctx, patientID)
	switch outcome.Status {
	case models.LookupFound:
		return true, nil
	case models.LookupNotFound:
		return false, nil
	case models.LookupUnavailable:
		return false, exceptions.ErrPatientServiceUnavailable(outcome.Cause, patientID)
	default:
		return false, exceptions.ErrPatientLookupUnclassified(nil)
	}
}

func (g *patientGateway) Snapshot() models.BreakerSnapshot {
	counts := g.Breaker.Counts()
	return models.BreakerSnapshot{
		Name:                 g.Breaker.Name(),
		State:                g.Breaker.State().String(),
		Requests:             counts.Requests,
		TotalSuccesses:       counts.TotalSuccesses,
		TotalFailures:        counts.TotalFailures,
		ConsecutiveSuccesses: counts.ConsecutiveSuccesses,
		ConsecutiveFailures:  counts.ConsecutiveFailures,
	}
}

func classify(patient *models.Patient, err error) models.LookupOutcome {
	if err != nil {
		if errors.Is(err, exceptions.ErrRemoteEntityNotFound) {
			return models.NotFound()
		}
		return models.Unavailable(err)
	}

	if patient == nil {
		return models.Unavailable(errEmptyPatient)
	}
	return models.Found(patient)
}
