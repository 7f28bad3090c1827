package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/delivery/http/routers"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/drivers/webframework"
	"clinic-service/internal/app/services/core/appointments"
	"clinic-service/internal/app/services/patients"
	"clinic-service/internal/app/services/shared/patientgateway"
	"clinic-service/internal/app/services/shared/publisher"
	"clinic-service/internal/migration"
	"clinic-service/internal/pkg/constvars"
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig, constvars.ServiceNameAppointment)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	postgresDB := database.NewPostgresDB(driverConfig, log)
	if internalConfig.App.RunMigrations {
		n, err := migration.Up(postgresDB)
		if err != nil {
			log.Fatal("Error executing migration", zap.Error(err))
		}
		log.Info("Applied migrations", zap.Int(constvars.LoggingCountKey, n))
	}

	eventPublisher, rabbitMQ := publisher.NewEventPublisher(driverConfig, internalConfig, constvars.ServiceNameAppointment, log)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, eventPublisher)

	server := webframework.NewHTTPServer(internalConfig, chiRouter)
	webframework.Serve(server, internalConfig, log, func(ctx context.Context) error {
		err := eventPublisher.Close()
		if err != nil {
			log.Warn("Failed to close event publisher", zap.Error(err))
		}
		return bootstrap.Shutdown(ctx)
	})
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, eventPublisher contracts.EventPublisher) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient lookup
	patientClient := patients.NewPatientHTTPClient(bootstrap.InternalConfig.PatientService, bootstrap.Logger)
	breaker := patientgateway.NewBreaker(bootstrap.InternalConfig.Breaker, bootstrap.Logger)
	patientGateway := patientgateway.NewPatientGateway(patientClient, breaker, bootstrap.Logger)

	// Appointment
	appointmentPostgresRepository := appointments.NewAppointmentPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentPostgresRepository, patientGateway, eventPublisher, bootstrap.Logger)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, requestTimeout)

	// System
	systemController := controllers.NewSystemController(constvars.ServiceNameAppointment, bootstrap.InternalConfig.App.Version, patientGateway)

	routers.SetupAppointmentRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, systemController, appointmentController)
}
