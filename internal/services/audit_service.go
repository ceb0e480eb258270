// internal/services/audit_service.go
package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

// AuditRecorder persists moderation side effects.
type AuditRecorder interface {
	Record(ctx context.Context, entry *models.ModerationAuditLog) error
}

// AuditService stores the moderation audit trail in Postgres.
type AuditService struct {
	db *gorm.DB
}

type AuditFilter struct {
	utils.PaginationParams
	ProductID string `json:"product_id,omitempty"`
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

func (s *AuditService) Record(ctx context.Context, entry *models.ModerationAuditLog) error {
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// List returns audit entries newest first.
func (s *AuditService) List(ctx context.Context, filter AuditFilter) ([]models.ModerationAuditLog, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.ModerationAuditLog{})

	if filter.ProductID != "" {
		query = query.Where("product_id = ?", filter.ProductID)
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit logs: %w", err)
	}

	query = utils.ApplyPagination(query.Order("created_at DESC"), filter.PaginationParams)

	var entries []models.ModerationAuditLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch audit logs: %w", err)
	}

	return entries, total, nil
}

// NoopAuditRecorder discards entries; used when the audit trail is disabled.
type NoopAuditRecorder struct{}

func (NoopAuditRecorder) Record(context.Context, *models.ModerationAuditLog) error { return nil }
