// internal/models/audit.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ModerationAuditLog records one moderation side effect on a product.
type ModerationAuditLog struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	ProductID     string         `json:"product_id" gorm:"size:24;not null;index"`
	Action        AuditAction    `json:"action" gorm:"type:varchar(20);not null"`
	NewStatus     ProductStatus  `json:"new_status,omitempty" gorm:"type:varchar(20)"`
	Actor         string         `json:"actor,omitempty" gorm:"size:255"`
	ChangedFields pq.StringArray `json:"changed_fields" gorm:"type:text[]"`
	Metadata      JSONB          `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt     time.Time      `json:"created_at" gorm:"not null"`
}

func (ModerationAuditLog) TableName() string {
	return "moderation_audit_logs"
}

func (l *ModerationAuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	return nil
}
