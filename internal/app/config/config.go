package config

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Host:                 utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:                 utils.GetEnvString("POSTGRES_PORT", "5432"),
			Username:             utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password:             utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			DBName:               utils.GetEnvString("POSTGRES_DB_NAME", "clinic"),
			SSLMode:              utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConnections:   utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNECTIONS", 20),
			MaxIdleConnections:   utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetimeInMin: utils.GetEnvInt("POSTGRES_CONN_MAX_LIFETIME_IN_MINUTES", 30),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DBName:   utils.GetEnvString("MONGODB_DB_NAME", "clinic_patients"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api/v1"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:   utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 15),
			RunMigrations:             utils.GetEnvBool("APP_RUN_MIGRATIONS", false),
		},
		PatientService: AppPatientService{
			BaseUrl:              utils.GetEnvString("PATIENT_SERVICE_BASE_URL", "http://localhost:8081/api/v1"),
			TimeoutInSeconds:     utils.GetEnvInt("PATIENT_SERVICE_TIMEOUT_IN_SECONDS", 3),
			MaxRequestsPerSecond: utils.GetEnvFloat("PATIENT_SERVICE_MAX_REQUESTS_PER_SECOND", 50),
			Burst:                utils.GetEnvInt("PATIENT_SERVICE_BURST", 10),
		},
		Breaker: AppBreaker{
			Name:                 utils.GetEnvString("BREAKER_NAME", "patient-service"),
			ConsecutiveFailures:  utils.GetEnvUint32("BREAKER_CONSECUTIVE_FAILURES", 5),
			MinimumRequests:      utils.GetEnvUint32("BREAKER_MINIMUM_REQUESTS", 10),
			FailureRatio:         utils.GetEnvFloat("BREAKER_FAILURE_RATIO", 0.5),
			IntervalInSeconds:    utils.GetEnvInt("BREAKER_INTERVAL_IN_SECONDS", 60),
			OpenTimeoutInSeconds: utils.GetEnvInt("BREAKER_OPEN_TIMEOUT_IN_SECONDS", 30),
			HalfOpenMaxRequests:  utils.GetEnvUint32("BREAKER_HALF_OPEN_MAX_REQUESTS", 1),
		},
		Locker: AppLocker{
			Enabled:             utils.GetEnvBool("LOCKER_ENABLED", false),
			ExpirationInSeconds: utils.GetEnvInt("LOCKER_EXPIRATION_IN_SECONDS", 10),
		},
		Events: AppEvents{
			Enabled:  utils.GetEnvBool("EVENTS_ENABLED", false),
			Exchange: utils.GetEnvString("EVENTS_EXCHANGE", constvars.EventExchangeDefault),
		},
	}
}
