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

type MedicalRecordController struct {
	Log                  *zap.Logger
	MedicalRecordUsecase contracts.MedicalRecordUsecase
	RequestTimeout       time.Duration
}

func NewMedicalRecordController(logger *zap.Logger, medicalRecordUsecase contracts.MedicalRecordUsecase, requestTimeout time.Duration) *MedicalRecordController {
	return &MedicalRecordController{
		Log:                  logger,
		MedicalRecordUsecase: medicalRecordUsecase,
		RequestTimeout:       requestTimeout,
	}
}

func (ctrl *MedicalRecordController) CreateMedicalRecord(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateMedicalRecord)
	err := utils.DecodeAndValidate(r, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.CreateMedicalRecord(ctx, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicalRecordSuccessMessage, response)
}

func (ctrl *MedicalRecordController) FindAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.FindAll(ctx)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, response)
}

func (ctrl *MedicalRecordController) FindMedicalRecordByPatientID(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.FindMedicalRecordByPatientID(ctx, patientID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, response)
}

func (ctrl *MedicalRecordController) FindMedicalRecordByID(w http.ResponseWriter, r *http.Request) {
	recordID, err := utils.ParseIDParam(r, constvars.URLParamRecordID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.FindMedicalRecordByID(ctx, recordID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicalRecordSuccessMessage, response)
}

func (ctrl *MedicalRecordController) AddEntry(w http.ResponseWriter, r *http.Request) {
	patientID, err := utils.ParseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	request := new(requests.CreateRecordEntry)
	err = utils.DecodeAndValidate(r, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	response, err := ctrl.MedicalRecordUsecase.AddEntryByPatientID(ctx, patientID, request)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateRecordEntrySuccessMessage, response)
}

func (ctrl *MedicalRecordController) DeleteMedicalRecord(w http.ResponseWriter, r *http.Request) {
	recordID, err := utils.ParseIDParam(r, constvars.URLParamRecordID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	err = ctrl.MedicalRecordUsecase.DeleteMedicalRecord(ctx, recordID)
	if err != nil {
		writeError(ctrl.Log, w, err)
		return
	}

	w.WriteHeader(constvars.StatusNoContent)
}
