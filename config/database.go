package config

import (
	"errors"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/klarsen/folio/internal/models"
)

// ErrMissingDatabaseURL is fatal at startup: outside development mode the
// process must not come up without an explicit connection target.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL environment variable is not set")

// Connect opens the database selected by the environment. DATABASE_URL
// points at Postgres; when it is unset and APP_ENV=development the server
// falls back to an embedded SQLite file so local runs need no provisioning.
// The choice is made exactly once here; nothing downstream branches on the
// engine.
func Connect() (*gorm.DB, error) {
	url := os.Getenv("DATABASE_URL")

	var db *gorm.DB
	var err error
	switch {
	case url != "":
		db, err = gorm.Open(postgres.Open(url), &gorm.Config{})
	case os.Getenv("APP_ENV") == "development":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "portfolio.db"
		}
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	default:
		return nil, ErrMissingDatabaseURL
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

// Migrate creates the five content tables when they do not exist yet.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Skill{},
		&models.Project{},
		&models.Experience{},
		&models.Message{},
	)
}
