package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	models "summit-insurance/portal/internal/models/gorm"
)

var PgDB *gorm.DB

// InitPostgresORM opens the GORM handle used by the transactional
// workflow services and applies the schema.
func InitPostgresORM(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	PgDB = db
	return db, nil
}

// AutoMigrate creates or updates all application tables. The unique
// indexes on signup_requests.email, email_allowlist.email and
// accounts.email are what the store-side conflict guarantees rest on.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SignupRequest{},
		&models.AllowlistEntry{},
		&models.Account{},
		&models.Profile{},
		&models.UserRole{},
		&models.ContactSubmission{},
		&models.JobApplication{},
	)
}
