package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.FindAll)
	router.Get("/{id}", patientController.FindPatientByID)
	router.Put("/{id}", patientController.UpdatePatient)
	router.Delete("/{id}", patientController.DeletePatient)
}
