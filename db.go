package main

import (
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenDB connects to Postgres when DATABASE_URL is set, otherwise to a
// local sqlite file (":memory:" works for tests).
func OpenDB(cfg *Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Quiz{},
		&Question{},
		&Answer{},
		&Result{},
	)
}

func IsQuizTableEmpty(db *gorm.DB) (bool, error) {
	var count int64
	if err := db.Model(&Quiz{}).Count(&count).Error; err != nil {
		return false, err
	}
	return count == 0, nil
}
