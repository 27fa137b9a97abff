package database

import (
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	err := db.AutoMigrate(
		&models.User{},
		&models.Planner{},
		&models.Event{},
		&models.Booking{},
		&models.PaymentHistory{},
		&models.Rating{},
		&models.Enquiry{},
	)
	if err != nil {
		return err
	}

	// Backfill columns added after the first deployments
	if db.Migrator().HasTable(&models.Booking{}) {
		columns := []string{
			"ADD COLUMN IF NOT EXISTS payment_status text DEFAULT 'PENDING'",
			"ADD COLUMN IF NOT EXISTS total_amount numeric DEFAULT 0",
			"ADD COLUMN IF NOT EXISTS paid_amount numeric DEFAULT 0",
			"ADD COLUMN IF NOT EXISTS reminder_sent boolean DEFAULT false",
		}

		for _, column := range columns {
			if err := db.Exec("ALTER TABLE bookings " + column).Error; err != nil {
				return err
			}
		}

		if err := db.Exec(`UPDATE bookings SET payment_status = 'PENDING' WHERE payment_status IS NULL`).Error; err != nil {
			return err
		}
	}

	if db.Migrator().HasTable(&models.Planner{}) {
		columns := []string{
			"ADD COLUMN IF NOT EXISTS average_rating numeric DEFAULT 0",
			"ADD COLUMN IF NOT EXISTS total_ratings integer DEFAULT 0",
			"ADD COLUMN IF NOT EXISTS profile_photo text DEFAULT ''",
		}

		for _, column := range columns {
			if err := db.Exec("ALTER TABLE planners " + column).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
