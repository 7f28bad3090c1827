package controllers

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	RequestTimeout     time.Duration
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, requestTimeout time.Duration) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		RequestTimeout:     requestTimeout,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAppointment)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindAll(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindAppointmentByID(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindAppointmentByID(ctx, appointmentID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) FindAppointmentsByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindAppointmentsByPatientID(ctx, patientID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	request := new(requests.UpdateAppointment)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, appointmentID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := utils.ParseIDParam(r, constvars.URLParamID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.AppointmentUsecase.DeleteAppointment(ctx, appointmentID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	w.WriteHeader(constvars.StatusNoContent)
}
