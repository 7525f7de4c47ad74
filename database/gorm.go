package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Connect sets up the GORM database connection for the given driver.
// The returned handle is safe for concurrent use and is meant to be shared.
func Connect(driver, dsn string, log *zap.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres, "":
		driver = DriverPostgres
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(SQLiteDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	// Configure GORM logger
	newLogger := logger.New(
		zap.NewStdLog(log.Named("gorm")),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}

	if driver == DriverSQLite {
		// in-memory databases live as long as their single connection
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info("✅ Connected to database", zap.String("driver", driver))

	if version, err := ServerVersion(db); err == nil {
		log.Info("📊 Database", zap.String("version", version))
	}

	return db, nil
}

// SQLiteDSN enables foreign key enforcement on every connection the driver
// opens. The pragma is per connection, so it has to travel in the DSN.
func SQLiteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

// ServerVersion returns the version string reported by the database server
func ServerVersion(db *gorm.DB) (string, error) {
	query := "SELECT version()"
	if db.Dialector.Name() == DriverSQLite {
		query = "SELECT sqlite_version()"
	}

	var version string
	if err := db.Raw(query).Scan(&version).Error; err != nil {
		return "", err
	}
	return version, nil
}

// Ping checks that the database is reachable
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the underlying connection pool
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
