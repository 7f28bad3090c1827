package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachMedicalRecordRoutes(router chi.Router, medicalRecordController *controllers.MedicalRecordController) {
	router.Post("/", medicalRecordController.CreateMedicalRecord)
	router.Get("/", medicalRecordController.FindAll)
	router.Get("/patient/{patientId}", medicalRecordController.FindMedicalRecordByPatientID)
	router.Post("/patient/{patientId}/entries", medicalRecordController.AddEntry)
	router.Get("/{recordId}", medicalRecordController.FindMedicalRecordByID)
	router.Delete("/{recordId}", medicalRecordController.DeleteMedicalRecord)
}
