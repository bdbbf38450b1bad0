package database

import (
	"fmt"
	"log/slog"
	"time"

	"locallibrary/internal/config"
	"locallibrary/internal/http-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenGorm opens the catalog database described by cfg.
func OpenGorm(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	return Open(cfg.DatabaseURL, cfg.IsDevelopment(), logger)
}

// Open connects GORM to the postgres DSN and verifies the connection.
// verbose turns on SQL statement logging.
func Open(dsn string, verbose bool, logger *slog.Logger) (*gorm.DB, error) {
	level := gormlogger.Warn
	if verbose {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Verify the connection
	if err := sqlDB.Ping(); err != nil {
		// close the db handle if ping fails to avoid resource leak
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	logger.Info("Connected to the database successfully")
	return db, nil
}

// AutoMigrate creates or updates every catalog table.
// Order matters: referenced tables come before the tables pointing at them.
func AutoMigrate(db *gorm.DB, logger *slog.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.UserPermission{},
		&models.RefreshToken{},
		&models.Author{},
		&models.Genre{},
		&models.Language{},
		&models.Book{},
		&models.BookInstance{},
	); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied successfully")
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
