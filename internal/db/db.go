package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"smarter-goals/internal/config"
	"smarter-goals/internal/goal"
	"smarter-goals/internal/habit"
	"smarter-goals/internal/reminder"
	"smarter-goals/internal/user"
)

var DB *gorm.DB

// Init connects to Postgres when a DSN is configured, falling back to a
// local SQLite file, and migrates all persisted models.
func Init(cfg *config.Config) error {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.Postgres.DSN != "" {
		db, err = gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLite.Path), &gorm.Config{})
	}
	if err != nil {
		return err
	}

	// Auto-migrate user model
	if err := db.AutoMigrate(&user.User{}); err != nil {
		return err
	}

	// Auto-migrate goal, habit and reminder settings models
	if err := db.AutoMigrate(&goal.Goal{}, &habit.Habit{}, &reminder.Settings{}); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected and migrated")
	return nil
}
