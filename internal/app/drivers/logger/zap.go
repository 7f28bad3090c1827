package logger

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/pkg/constvars"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewZapLogger builds the JSON logger shared by every layer of a service.
// Every entry carries the service name and build version.
func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, serviceName string) *zap.Logger {
	level, err := zapcore.ParseLevel(driverConfig.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	outputs, errorOutputs := sinks(driverConfig.Logger, internalConfig.App.Env)

	cfg := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: internalConfig.App.Env == constvars.AppEnvDevelopment,
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      outputs,
		ErrorOutputPaths: errorOutputs,
		InitialFields: map[string]interface{}{
			constvars.LoggingServiceKey: serviceName,
			constvars.LoggingVersionKey: internalConfig.App.Version,
		},
	}

	zapLogger, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error while initializing zap logger for %s: %v", serviceName, err)
	}
	return zapLogger
}

// sinks keeps stdout in every environment and adds the configured files in production.
func sinks(loggerConfig config.Logger, env string) (outputs, errorOutputs []string) {
	outputs = []string{"stdout"}
	errorOutputs = []string{"stderr"}
	if env != constvars.AppEnvProduction {
		return outputs, errorOutputs
	}
	if loggerConfig.OutputFileName != "" {
		outputs = append(outputs, loggerConfig.OutputFileName)
	}
	if loggerConfig.OutputErrorFileName != "" {
		errorOutputs = append(errorOutputs, loggerConfig.OutputErrorFileName)
	}
	return outputs, errorOutputs
}
