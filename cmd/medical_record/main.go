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
	medicalRecords "clinic-service/internal/app/services/core/medical_records"
	"clinic-service/internal/app/services/patients"
	"clinic-service/internal/app/services/shared/locker"
	"clinic-service/internal/app/services/shared/patientgateway"
	"clinic-service/internal/app/services/shared/publisher"
	"clinic-service/internal/app/services/shared/redis"
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

	log := logger.NewZapLogger(driverConfig, internalConfig, constvars.ServiceNameMedicalRecord)

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

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		PostgresDB:     postgresDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Locker.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig, log)
	}

	eventPublisher, rabbitMQ := publisher.NewEventPublisher(driverConfig, internalConfig, constvars.ServiceNameMedicalRecord, log)
	bootstrap.RabbitMQ = rabbitMQ
	bootstrapingTheApp(bootstrap, eventPublisher)

	server := webframework.NewHTTPServer(internalConfig, bootstrap.Router)
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

	// Creation lock
	var lockService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		lockService = locker.NewLockService(redisRepository, bootstrap.Logger)
	}

	// Patient lookup
	patientClient := patients.NewPatientHTTPClient(bootstrap.InternalConfig.PatientService, bootstrap.Logger)
	breaker := patientgateway.NewBreaker(bootstrap.InternalConfig.Breaker, bootstrap.Logger)
	patientGateway := patientgateway.NewPatientGateway(patientClient, breaker, bootstrap.Logger)

	// Medical record
	medicalRecordPostgresRepository := medicalRecords.NewMedicalRecordPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	recordEntryPostgresRepository := medicalRecords.NewRecordEntryPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	medicalRecordUsecase := medicalRecords.NewMedicalRecordUsecase(
		medicalRecordPostgresRepository,
		recordEntryPostgresRepository,
		patientGateway,
		lockService,
		eventPublisher,
		bootstrap.InternalConfig.Locker,
		bootstrap.Logger,
	)
	medicalRecordController := controllers.NewMedicalRecordController(bootstrap.Logger, medicalRecordUsecase, requestTimeout)

	// System
	systemController := controllers.NewSystemController(constvars.ServiceNameMedicalRecord, bootstrap.InternalConfig.App.Version, patientGateway)

	routers.SetupMedicalRecordRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, systemController, medicalRecordController)
}
