// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("unsupported JSONB source type")
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type ProductStatus string

const (
	ProductStatusPending  ProductStatus = "pending"
	ProductStatusAccepted ProductStatus = "accepted"
	ProductStatusRejected ProductStatus = "rejected"
)

type ModerationAction string

const (
	ActionAccept ModerationAction = "accept"
	ActionReject ModerationAction = "reject"
)

type AuditAction string

const (
	AuditActionDecision AuditAction = "decision"
	AuditActionFeature  AuditAction = "feature"
	AuditActionDelete   AuditAction = "delete"
)
