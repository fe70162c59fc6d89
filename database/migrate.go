package database

import (
	"log"

	"resumatch/internal/models"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Verification{},
		&models.ResetPassword{},
		&models.Resume{},
		&models.JobPost{},
		&models.Notification{},
		&models.Activity{},
		&models.GeneratedResume{},
	)
	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}
