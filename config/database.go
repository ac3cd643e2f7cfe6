package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// postgresDSN resolves the connection string. DATABASE_URL (set by most hosts)
// and DB_URL win over the config file; local dev falls back to a plain DSN.
func postgresDSN(cfg DatabaseConfig) string {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = os.Getenv("DB_URL")
	}
	if dbURL == "" {
		dbURL = cfg.URL
	}

	if dbURL == "" {
		return "host=localhost user=postgres password=postgres dbname=godam port=5432 sslmode=disable TimeZone=UTC"
	}
	// TimeZone is a startup parameter, so every pooled connection gets it
	if !strings.Contains(dbURL, "://") {
		if !strings.Contains(dbURL, "TimeZone=") {
			dbURL += " TimeZone=UTC"
		}
		return dbURL
	}

	// hosted postgres usually needs sslmode=require
	if !strings.Contains(dbURL, "sslmode=") && !strings.Contains(dbURL, "localhost") {
		dbURL = appendQuery(dbURL, "sslmode=require")
	}
	if !strings.Contains(dbURL, "search_path=") {
		dbURL = appendQuery(dbURL, "search_path=public")
	}
	if !strings.Contains(dbURL, "TimeZone=") {
		dbURL = appendQuery(dbURL, "TimeZone=UTC")
	}
	return dbURL
}

func appendQuery(u, kv string) string {
	sep := "?"
	if strings.Contains(u, "?") {
		sep = "&"
	}
	return u + sep + kv
}

func gormLogLevel(s string) logger.LogLevel {
	switch strings.ToLower(s) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// ConnectDB opens the pool described by cfg. The handle is passed to the
// service and controllers; there is no package level connection.
func ConnectDB(cfg DatabaseConfig, log *logrus.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(
		log,
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLogLevel(cfg.LogLevel),
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	gcfg := &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		dialector = sqlite.Open(cfg.Path + "?_foreign_keys=on&_busy_timeout=5000")
	case "postgres", "":
		dialector = postgres.Open(postgresDSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gcfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	if cfg.Driver != "sqlite" {
		var dbName, currentUser string
		_ = db.Raw("SELECT current_database()").Scan(&dbName)
		_ = db.Raw("SELECT current_user").Scan(&currentUser)
		log.WithFields(logrus.Fields{"db": dbName, "user": currentUser}).Info("database connected")
	} else {
		log.WithField("path", cfg.Path).Info("sqlite database opened")
	}

	return db, nil
}
