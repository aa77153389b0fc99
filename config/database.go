package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ParseDatabaseURL splits a DATABASE_URL into a driver name and the DSN handed to that driver.
// postgres:// and postgresql:// URLs are passed through unchanged; sqlite://path becomes path.
// A value with no scheme is treated as a SQLite file path.
func ParseDatabaseURL(databaseURL string) (driver, dsn string, err error) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		return DriverPostgres, databaseURL, nil
	case strings.HasPrefix(databaseURL, "sqlite://"):
		dsn = strings.TrimPrefix(databaseURL, "sqlite://")
	case strings.Contains(databaseURL, "://"):
		return "", "", fmt.Errorf("unsupported DATABASE_URL scheme in %q", databaseURL)
	default:
		dsn = databaseURL
	}
	if dsn == "" {
		return "", "", fmt.Errorf("DATABASE_URL %q has no sqlite path", databaseURL)
	}
	return DriverSQLite, dsn, nil
}

// OpenDatabase opens the database named by cfg.DatabaseURL.
// The caller owns the returned handle and must close it.
func OpenDatabase(cfg *Config) (*gorm.DB, error) {
	driver, dsn, err := ParseDatabaseURL(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{}
	if cfg.IsProduction() {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite allows one writer, and an in-memory database exists per connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
