package patients

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"clinic-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type patientHTTPClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

// patientEnvelope mirrors the response envelope written by the patient service.
type patientEnvelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    *responses.Patient `json:"data"`
}

func NewPatientHTTPClient(patientServiceConfig config.AppPatientService, logger *zap.Logger) contracts.PatientClient {
	limit := rate.Inf
	if patientServiceConfig.MaxRequestsPerSecond > 0 {
		limit = rate.Limit(patientServiceConfig.MaxRequestsPerSecond)
	}
	burst := patientServiceConfig.Burst
	if burst <= 0 {
		burst = 1
	}

	return &patientHTTPClient{
		BaseUrl: strings.TrimSuffix(patientServiceConfig.BaseUrl, "/"),
		HTTPClient: &http.Client{
			Timeout: time.Duration(patientServiceConfig.TimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(limit, burst),
		Log:     logger,
	}
}

// errorEnvelope is the failure body written by the patient service.
type errorEnvelope struct {
	Success bool            `json:"success"`
	Kind    exceptions.Kind `json:"kind"`
	Message string          `json:"message"`
}

// FindPatientByID distinguishes a 404 carrying the patient service's not_found
// envelope, which means the patient does not exist, from every other failure,
// which says nothing about existence. A bare 404 from a wrong base URL or a
// proxy is a transport failure.
func (c *patientHTTPClient) FindPatientByID(ctx context.Context, patientID int64) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("patientHTTPClient.FindPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	err := c.Limiter.Wait(ctx)
	if err != nil {
		c.Log.Error("patientHTTPClient.FindPatientByID error waiting for rate limiter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRemoteRateLimitWait(err)
	}

	url := fmt.Sprintf("%s/%s/%d", c.BaseUrl, constvars.ResourcePatients, patientID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("patientHTTPClient.FindPatientByID error sending request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case constvars.StatusOK:
	case constvars.StatusNotFound:
		failure := new(errorEnvelope)
		if err := json.NewDecoder(resp.Body).Decode(failure); err != nil || failure.Kind != exceptions.KindNotFound {
			c.Log.Error("patientHTTPClient.FindPatientByID 404 without patient service envelope",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingURLKey, url),
			)
			return nil, exceptions.ErrRemoteUnexpectedStatus(err, resp.StatusCode, constvars.ResourcePatients)
		}
		c.Log.Info("patientHTTPClient.FindPatientByID patient does not exist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, exceptions.ErrRemotePatientNotFound(patientID)
	default:
		c.Log.Error("patientHTTPClient.FindPatientByID unexpected status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return nil, exceptions.ErrRemoteUnexpectedStatus(nil, resp.StatusCode, constvars.ResourcePatients)
	}

	envelope := new(patientEnvelope)
	err = json.NewDecoder(resp.Body).Decode(envelope)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}
	if envelope.Data == nil {
		return nil, exceptions.ErrDecodeResponse(errEmptyPatientPayload, constvars.ResourcePatients)
	}

	birthDate, err := utils.ParseDate(envelope.Data.BirthDate)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}

	c.Log.Info("patientHTTPClient.FindPatientByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)
	return &models.Patient{
		ID:        envelope.Data.ID,
		Name:      envelope.Data.Name,
		FirstName: envelope.Data.FirstName,
		BirthDate: birthDate,
		Contact:   envelope.Data.Contact,
	}, nil
}
