package routers

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func setupBaseRoutes(router *chi.Mux, middlewares *middlewares.Middlewares) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
}

func SetupPatientRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	systemController *controllers.SystemController,
	patientController *controllers.PatientController,
) {
	setupBaseRoutes(router, middlewares)
	router.Get("/healthz", systemController.Health)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, patientController)
		})
	})
}

func SetupAppointmentRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	systemController *controllers.SystemController,
	appointmentController *controllers.AppointmentController,
) {
	setupBaseRoutes(router, middlewares)
	attachSystemRoutes(router, systemController)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, appointmentController)
		})
	})
}

func SetupMedicalRecordRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	systemController *controllers.SystemController,
	medicalRecordController *controllers.MedicalRecordController,
) {
	setupBaseRoutes(router, middlewares)
	attachSystemRoutes(router, systemController)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/medical-records", func(r chi.Router) {
			attachMedicalRecordRoutes(r, medicalRecordController)
		})
	})
}
