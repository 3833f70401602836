package database

import (
	"localizebackend/cmd/internal/config"
	"localizebackend/cmd/internal/domain/entity"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Init opens the database described by cfg and migrates the schema.
func Init(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return Open(postgres.Open(cfg.DatabaseURL), 10)
	}
	return Open(sqlite.Open(cfg.DatabasePath+"?_pragma=foreign_keys(1)"), 1)
}

// Open connects through dialector and migrates the schema. SQLite only
// tolerates a single writer, so callers pass maxConns = 1 for it.
func Open(dialector gorm.Dialector, maxConns int) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.Account{}, &entity.Company{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
