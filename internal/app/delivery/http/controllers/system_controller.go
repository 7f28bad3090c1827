package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/utils"
	"net/http"
)

// SystemController serves liveness and, for services that call the patient
// service, the breaker state. PatientGateway is nil in the patient service.
type SystemController struct {
	ServiceName    string
	Version        string
	PatientGateway contracts.PatientGateway
}

func NewSystemController(serviceName, version string, patientGateway contracts.PatientGateway) *SystemController {
	return &SystemController{
		ServiceName:    serviceName,
		Version:        version,
		PatientGateway: patientGateway,
	}
}

func (ctrl *SystemController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.Health{
		Service: ctrl.ServiceName,
		Version: ctrl.Version,
		Status:  constvars.HealthStatusUp,
	})
}

func (ctrl *SystemController) BreakerState(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBreakerStateSuccessMessage, responses.NewBreakerState(ctrl.PatientGateway.Snapshot()))
}
