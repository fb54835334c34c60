package config

import (
	"log"
	"os"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens the local data file. sqlite keeps the whole store in a single
// file next to the binary, the desktop analog of browser-local storage.
func NewDB() (*gorm.DB, error) {
	path := os.Getenv("LENDSTOCK_DB")
	if path == "" {
		path = "lendstock.db"
	}

	logMode := logger.Warn
	if os.Getenv("GORM_LOG") == "off" {
		logMode = logger.Silent
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logMode,
			Colorful:      true,
		},
	)

	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormLogger,
	})
}
