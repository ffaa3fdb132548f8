package db

import (
	"log"
	"time"

	"github.com/agendame/agenda-api/internal/config"
	"github.com/agendame/agenda-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.File{},
		&models.User{},
		&models.Appointment{},
		&models.Notification{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// One active booking per provider/hour. Concurrent creations race past
	// the in-request conflict check; this index is the backstop.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_provider_slot
        ON appointments (provider_id, date)
        WHERE canceled_at IS NULL
    `)

	return db
}
