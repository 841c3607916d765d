package main

import (
	"context"
	"os"

	"go-booking-platform/config"
	"go-booking-platform/internal/infrastructure/database"
	"go-booking-platform/internal/repository"
	"go-booking-platform/internal/service"

	"github.com/sirupsen/logrus"
)

// One-shot customer deduplication pass. Intended to run from cron or by
// hand, against the same database the API serves.
func main() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	log := logrus.StandardLogger()
	dedupe := service.NewDedupeService(
		db,
		log,
		repository.NewUserRepository(),
		repository.NewAppointmentRepository(),
		repository.NewPackagePurchaseRepository(),
	)

	result, err := dedupe.Run(context.Background())
	if err != nil {
		logrus.Fatalf("Dedupe run failed: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"groups_merged":           result.GroupsMerged,
		"duplicates_deactivated":  result.DuplicatesDeactivated,
		"appointments_reassigned": result.AppointmentsReassigned,
		"purchases_reassigned":    result.PurchasesReassigned,
	}).Info("Dedupe run complete")
}
