package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the SQL database selected by cfg.StoreDriver.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.StoreDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseDSN)
	case "mysql":
		dialector = mysql.Open(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("store driver %q has no database", cfg.StoreDriver)
	}

	logLevel := logger.Warn
	if cfg.GinMode == "release" {
		logLevel = logger.Error
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.StoreDriver, err)
	}
	return db, nil
}
