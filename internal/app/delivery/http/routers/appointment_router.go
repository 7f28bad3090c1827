package routers

import (
	"clinic-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Post("/", appointmentController.CreateAppointment)
	router.Get("/", appointmentController.FindAll)
	router.Get("/patient/{patientId}", appointmentController.FindAppointmentsByPatientID)
	router.Get("/{id}", appointmentController.FindAppointmentByID)
	router.Put("/{id}", appointmentController.UpdateAppointment)
	router.Delete("/{id}", appointmentController.DeleteAppointment)
}
