package routers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPatientUsecase struct {
	patients map[int64]responses.Patient
}

func (s *stubPatientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*responses.Patient, error) {
	patient := responses.Patient{ID: int64(len(s.patients) + 1), Name: request.Name, FirstName: request.FirstName, BirthDate: request.BirthDate}
	s.patients[patient.ID] = patient
	return &patient, nil
}

func (s *stubPatientUsecase) FindAll(ctx context.Context) ([]responses.Patient, error) {
	result := make([]responses.Patient, 0, len(s.patients))
	for _, patient := range s.patients {
		result = append(result, patient)
	}
	return result, nil
}

func (s *stubPatientUsecase) FindPatientByID(ctx context.Context, patientID int64) (*responses.Patient, error) {
	patient, ok := s.patients[patientID]
	if !ok {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	return &patient, nil
}

func (s *stubPatientUsecase) UpdatePatient(ctx context.Context, patientID int64, request *requests.UpdatePatient) (*responses.Patient, error) {
	if _, ok := s.patients[patientID]; !ok {
		return nil, exceptions.ErrPatientNotFound(nil, patientID)
	}
	patient := responses.Patient{ID: patientID, Name: request.Name, FirstName: request.FirstName, BirthDate: request.BirthDate}
	s.patients[patientID] = patient
	return &patient, nil
}

func (s *stubPatientUsecase) DeletePatient(ctx context.Context, patientID int64) error {
	if _, ok := s.patients[patientID]; !ok {
		return exceptions.ErrPatientNotFound(nil, patientID)
	}
	delete(s.patients, patientID)
	return nil
}

func newPatientRouter() *chi.Mux {
	internalConfig := &config.InternalConfig{App: config.App{EndpointPrefix: "/api/v1", MaxRequests: 1000, MaxTimeRequestsPerSeconds: 1}}
	router := chi.NewRouter()
	SetupPatientRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(zap.NewNop(), internalConfig),
		controllers.NewSystemController(constvars.ServiceNamePatient, "test", nil),
		controllers.NewPatientController(zap.NewNop(), &stubPatientUsecase{patients: map[int64]responses.Patient{}}, time.Second),
	)
	return router
}

func TestPatientRoutes(t *testing.T) {
	router := newPatientRouter()

	rec := doRequest(router, http.MethodPost, "/api/v1/patients", `{"name":"Lovelace","firstName":"Ada","birthDate":"1990-12-10"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/patients/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Success bool              `json:"success"`
		Data    responses.Patient `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Ada", envelope.Data.FirstName)
	assert.Equal(t, "1990-12-10", envelope.Data.BirthDate)

	rec = doRequest(router, http.MethodGet, "/api/v1/patients/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var failure exceptions.CustomError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &failure))
	assert.Equal(t, exceptions.KindNotFound, failure.Kind)

	rec = doRequest(router, http.MethodPost, "/api/v1/patients", `{"name":" ","firstName":"Ada","birthDate":"1990-12-10"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodDelete, "/api/v1/patients/1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/v1/internal/breaker", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
