package main

import (
	"clinic-service/internal/app/config"
	"clinic-service/internal/app/drivers/database"
	"clinic-service/internal/app/drivers/logger"
	"clinic-service/internal/migration"
	"clinic-service/internal/pkg/constvars"
	"flag"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up, down or status")
	steps := flag.Int("steps", 1, "number of migrations to roll back when direction is down, 0 for all")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	db := database.NewPostgresDB(driverConfig, logger.NewZapLogger(driverConfig, internalConfig, constvars.ServiceNameMigration))
	defer db.Close()

	switch *direction {
	case "up":
		n, err := migration.Up(db)
		if err != nil {
			log.Fatalf("Error executing migration: %v", err)
		}
		log.Infof("Applied %d migrations!", n)
	case "down":
		n, err := migration.Down(db, *steps)
		if err != nil {
			log.Fatalf("Error rolling back migration: %v", err)
		}
		log.Infof("Rolled back %d migrations!", n)
	case "status":
		statuses, err := migration.Status(db)
		if err != nil {
			log.Fatalf("Error reading migration status: %v", err)
		}
		for _, status := range statuses {
			log.WithField("applied_at", status.AppliedAt).
				WithField("applied", status.Applied).
				Info(status.ID)
		}
	default:
		log.Fatalf("Unknown migration direction %q", *direction)
	}
}
