// internal/database/postgres.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javajoker/launchpad-backend/internal/config"
	"github.com/javajoker/launchpad-backend/internal/models"
)

// InitializeAudit opens the Postgres database that holds the moderation
// audit trail.
func InitializeAudit(cfg config.AuditConfig) (*gorm.DB, error) {
	// Configure GORM logger
	gormConfig := &gorm.Config{Logger: logger.Default.LogMode(logger.Info)}
	if cfg.LogLevel == "silent" {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to audit database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping audit database: %w", err)
	}

	logrus.WithField("database", cfg.Database).Info("Audit database connection established")
	return db, nil
}

func CloseAudit(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing audit database connection")
		return
	}
	logrus.Info("Audit database connection closed")
}

func RunAuditMigrations(db *gorm.DB) error {
	logrus.Info("Running audit migrations...")

	if err := db.AutoMigrate(&models.ModerationAuditLog{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_moderation_audit_product_created ON moderation_audit_logs(product_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_moderation_audit_action ON moderation_audit_logs(action)",
	}
	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			// Continue with other indexes instead of failing completely
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
		}
	}

	logrus.Info("Audit migrations completed")
	return nil
}
