package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-forecast/internal/infra/database"
)

var gormConfig = &gorm.Config{
	Logger: logger.Default.LogMode(logger.Silent),
}

// Open connects to the archive database through GORM's postgres driver.
func Open(config database.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(config.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return db, nil
}

// OpenSQLite opens a file backed archive for local runs without a postgres server.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite archive %s: %w", path, err)
	}

	// sqlite allows a single writer
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
