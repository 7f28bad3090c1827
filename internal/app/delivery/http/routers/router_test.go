package routers

import (
	"bytes"
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMedicalRecordUsecase struct {
	err       error
	lastEntry *requests.CreateRecordEntry
}

func (s *stubMedicalRecordUsecase) CreateMedicalRecord(ctx context.Context, request *requests.CreateMedicalRecord) (*responses.MedicalRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &responses.MedicalRecord{ID: 1, PatientID: *request.PatientID, BloodType: request.BloodType, Entries: []responses.RecordEntry{}}, nil
}

func (s *stubMedicalRecordUsecase) FindAll(ctx context.Context) ([]responses.MedicalRecord, error) {
	return []responses.MedicalRecord{}, s.err
}

func (s *stubMedicalRecordUsecase) FindMedicalRecordByPatientID(ctx context.Context, patientID int64) (*responses.MedicalRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &responses.MedicalRecord{ID: 1, PatientID: patientID, Entries: []responses.RecordEntry{}}, nil
}

func (s *stubMedicalRecordUsecase) FindMedicalRecordByID(ctx context.Context, recordID int64) (*responses.MedicalRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &responses.MedicalRecord{ID: recordID, Entries: []responses.RecordEntry{}}, nil
}

func (s *stubMedicalRecordUsecase) AddEntryByPatientID(ctx context.Context, patientID int64, request *requests.CreateRecordEntry) (*responses.RecordEntry, error) {
	s.lastEntry = request
	if s.err != nil {
		return nil, s.err
	}
	return &responses.RecordEntry{ID: 1, Date: "2024-06-01", Type: request.Type, Content: request.Content}, nil
}

func (s *stubMedicalRecordUsecase) DeleteMedicalRecord(ctx context.Context, recordID int64) error {
	return s.err
}

type stubGateway struct{}

func (stubGateway) Lookup(ctx context.Context, patientID int64) models.LookupOutcome {
	return models.NotFound()
}

func (stubGateway) Exists(ctx context.Context, patientID int64) (bool, error) { return false, nil }

func (stubGateway) Snapshot() models.BreakerSnapshot {
	return models.BreakerSnapshot{Name: "patient-service", State: "open", ConsecutiveFailures: 5}
}

func newMedicalRecordRouter(usecase *stubMedicalRecordUsecase) *chi.Mux {
	internalConfig := &config.InternalConfig{App: config.App{EndpointPrefix: "/api/v1", MaxRequests: 1000, MaxTimeRequestsPerSeconds: 1}}
	router := chi.NewRouter()
	SetupMedicalRecordRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(zap.NewNop(), internalConfig),
		controllers.NewSystemController(constvars.ServiceNameMedicalRecord, "test", stubGateway{}),
		controllers.NewMedicalRecordController(zap.NewNop(), usecase, time.Second),
	)
	return router
}

func doRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMedicalRecordRoutes_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		usecaseErr error
		method     string
		path       string
		body       string
		wantStatus int
		wantKind   exceptions.Kind
	}{
		{name: "created", method: http.MethodPost, path: "/api/v1/medical-records", body: `{"patientId":7,"bloodType":"O+"}`, wantStatus: http.StatusCreated},
		{name: "missing patient id", method: http.MethodPost, path: "/api/v1/medical-records", body: `{"bloodType":"O+"}`, wantStatus: http.StatusBadRequest, wantKind: exceptions.KindInput},
		{name: "unknown blood type", method: http.MethodPost, path: "/api/v1/medical-records", body: `{"patientId":7,"bloodType":"Z"}`, wantStatus: http.StatusBadRequest, wantKind: exceptions.KindInput},
		{name: "malformed json", method: http.MethodPost, path: "/api/v1/medical-records", body: `{"patientId":`, wantStatus: http.StatusBadRequest, wantKind: exceptions.KindInput},
		{name: "conflict", usecaseErr: exceptions.ErrMedicalRecordAlreadyExists(nil, 7), method: http.MethodPost, path: "/api/v1/medical-records", body: `{"patientId":7}`, wantStatus: http.StatusConflict, wantKind: exceptions.KindConflict},
		{name: "patient service unavailable", usecaseErr: exceptions.ErrPatientServiceUnavailable(errors.New("open"), 7), method: http.MethodPost, path: "/api/v1/medical-records", body: `{"patientId":7}`, wantStatus: http.StatusServiceUnavailable, wantKind: exceptions.KindDependencyUnavailable},
		{name: "record not found", usecaseErr: exceptions.ErrMedicalRecordNotFound(nil), method: http.MethodGet, path: "/api/v1/medical-records/patient/7", wantStatus: http.StatusNotFound, wantKind: exceptions.KindNotFound},
		{name: "bad record id", method: http.MethodGet, path: "/api/v1/medical-records/abc", wantStatus: http.StatusBadRequest, wantKind: exceptions.KindInput},
		{name: "unclassified store failure", usecaseErr: errors.New("connection reset"), method: http.MethodGet, path: "/api/v1/medical-records/3", wantStatus: http.StatusInternalServerError, wantKind: exceptions.KindInternal},
		{name: "bare deadline", usecaseErr: context.DeadlineExceeded, method: http.MethodGet, path: "/api/v1/medical-records/3", wantStatus: http.StatusGatewayTimeout, wantKind: exceptions.KindInternal},
		{name: "entry added", method: http.MethodPost, path: "/api/v1/medical-records/patient/7/entries", body: `{"type":"NOTE","content":"hello"}`, wantStatus: http.StatusCreated},
		{name: "entry with unknown type", method: http.MethodPost, path: "/api/v1/medical-records/patient/7/entries", body: `{"type":"SURGERY","content":"hello"}`, wantStatus: http.StatusBadRequest, wantKind: exceptions.KindInput},
		{name: "deleted", method: http.MethodDelete, path: "/api/v1/medical-records/3", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMedicalRecordRouter(&stubMedicalRecordUsecase{err: tt.usecaseErr})

			rec := doRequest(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get(constvars.HeaderXRequestID))
			if tt.wantKind == "" {
				return
			}
			var body exceptions.CustomError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantKind, body.Kind)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	router := newMedicalRecordRouter(&stubMedicalRecordUsecase{})

	rec := doRequest(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), constvars.HealthStatusUp)

	rec = doRequest(router, http.MethodGet, "/internal/breaker", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Success bool                   `json:"success"`
		Data    responses.BreakerState `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "open", envelope.Data.State)
	assert.Equal(t, uint32(5), envelope.Data.ConsecutiveFailures)
}
