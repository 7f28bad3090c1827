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
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAppointmentUsecase struct {
	err        error
	lastUpdate *requests.UpdateAppointment
}

func (s *stubAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) (*responses.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &responses.Appointment{ID: 1, Date: request.Date, Time: request.Time, PatientID: request.PatientID}, nil
}

func (s *stubAppointmentUsecase) FindAll(ctx context.Context) ([]responses.Appointment, error) {
	return []responses.Appointment{}, s.err
}

func (s *stubAppointmentUsecase) FindAppointmentByID(ctx context.Context, appointmentID int64) (*responses.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &responses.Appointment{ID: appointmentID}, nil
}

func (s *stubAppointmentUsecase) FindAppointmentsByPatientID(ctx context.Context, patientID int64) ([]responses.Appointment, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []responses.Appointment{{ID: 1, PatientID: &patientID}}, nil
}

func (s *stubAppointmentUsecase) UpdateAppointment(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	s.lastUpdate = request
	if s.err != nil {
		return nil, s.err
	}
	return &responses.Appointment{ID: appointmentID}, nil
}

func (s *stubAppointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	return s.err
}

func newAppointmentRouter(usecase *stubAppointmentUsecase) *chi.Mux {
	internalConfig := &config.InternalConfig{App: config.App{EndpointPrefix: "/api/v1", MaxRequests: 1000, MaxTimeRequestsPerSeconds: 1}}
	router := chi.NewRouter()
	SetupAppointmentRoutes(
		router,
		internalConfig,
		middlewares.NewMiddlewares(zap.NewNop(), internalConfig),
		controllers.NewSystemController(constvars.ServiceNameAppointment, "test", stubGateway{}),
		controllers.NewAppointmentController(zap.NewNop(), usecase, time.Second),
	)
	return router
}

func TestAppointmentRoutes_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		usecaseErr error
		method     string
		path       string
		body       string
		wantStatus int
		wantKind   exceptions.Kind
	}{
		{name: "created without patient", method: http.MethodPost, path: "/api/v1/appointments", body: `{"date":"2024-06-01","time":"09:30"}`, wantStatus: http.StatusCreated},
		{name: "bad time", method: http.MethodPost, path: "/api/v1/appointments", body: `{"date":"2024-06-01","time":"9.30am"}`, wantStatus: http.StatusBadRequest, wantKind: exceptions.KindInput},
		{name: "unknown patient", usecaseErr: exceptions.ErrReferencedPatientNotExist(nil, 9), method: http.MethodPost, path: "/api/v1/appointments", body: `{"date":"2024-06-01","time":"09:30","patientId":9}`, wantStatus: http.StatusBadRequest, wantKind: exceptions.KindInput},
		{name: "patient service unavailable", usecaseErr: exceptions.ErrPatientServiceUnavailable(errors.New("open"), 9), method: http.MethodPost, path: "/api/v1/appointments", body: `{"date":"2024-06-01","time":"09:30","patientId":9}`, wantStatus: http.StatusServiceUnavailable, wantKind: exceptions.KindDependencyUnavailable},
		{name: "list by patient", method: http.MethodGet, path: "/api/v1/appointments/patient/9", wantStatus: http.StatusOK},
		{name: "missing appointment", usecaseErr: exceptions.ErrAppointmentNotFound(nil, 4), method: http.MethodGet, path: "/api/v1/appointments/4", wantStatus: http.StatusNotFound, wantKind: exceptions.KindNotFound},
		{name: "updated", method: http.MethodPut, path: "/api/v1/appointments/4", body: `{"time":"10:00"}`, wantStatus: http.StatusOK},
		{name: "deleted", method: http.MethodDelete, path: "/api/v1/appointments/4", wantStatus: http.StatusNoContent},
		{name: "bad patient id", method: http.MethodGet, path: "/api/v1/appointments/patient/x", wantStatus: http.StatusBadRequest, wantKind: exceptions.KindInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAppointmentRouter(&stubAppointmentUsecase{err: tt.usecaseErr})

			rec := doRequest(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantKind == "" {
				return
			}
			var body exceptions.CustomError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body.Kind)
		})
	}
}

func TestAppointmentRoutes_PartialUpdateKeepsAbsentFields(t *testing.T) {
	usecase := &stubAppointmentUsecase{}
	router := newAppointmentRouter(usecase)

	rec := doRequest(router, http.MethodPut, "/api/v1/appointments/4", `{"time":"10:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, usecase.lastUpdate)
	require.NotNil(t, usecase.lastUpdate.Time)
	assert.Equal(t, "10:00", *usecase.lastUpdate.Time)
	assert.Nil(t, usecase.lastUpdate.Date)
	assert.Nil(t, usecase.lastUpdate.PatientID)
}
