package database

import (
	"clinic-service/internal/app/config"
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func NewPostgresDB(driverConfig *config.DriverConfig, log *zap.Logger) *sql.DB {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.DBName,
		driverConfig.PostgresDB.SSLMode,
	)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		log.Fatal("Failed to open postgres database connection", zap.Error(err))
	}
	db.SetMaxOpenConns(driverConfig.PostgresDB.MaxOpenConnections)
	db.SetMaxIdleConns(driverConfig.PostgresDB.MaxIdleConnections)
	db.SetConnMaxLifetime(time.Duration(driverConfig.PostgresDB.ConnMaxLifetimeInMin) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = db.PingContext(ctx)
	if err != nil {
		log.Fatal("Failed to connect to postgres database", zap.Error(err))
	}

	log.Info("Successfully connected to postgres database",
		zap.String("host", driverConfig.PostgresDB.Host),
		zap.String("db_name", driverConfig.PostgresDB.DBName),
	)
	return db
}
