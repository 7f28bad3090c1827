package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/delivery/http/controllers"
	"clinic-service/internal/app/delivery/http/middlewares"
	"clinic-service/internal/app/delivery/http/routers"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/app/drivers/webframework"
	"clinic-service/internal/app/services/core/patients"
	"clinic-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig, constvars.ServiceNamePatient)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := webframework.NewHTTPServer(internalConfig, chiRouter)
	webframework.Serve(server, internalConfig, log, bootstrap.Shutdown)
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.Logger)
	patientUsecase := patients.NewPatientUsecase(patientMongoRepository, bootstrap.Logger)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, requestTimeout)

	// System
	systemController := controllers.NewSystemController(constvars.ServiceNamePatient, bootstrap.InternalConfig.App.Version, nil)

	routers.SetupPatientRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, systemController, patientController)
}
