// internal/config/database.go
package config

import (
	"fmt"
)

func (a *AuditConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		a.Host, a.Port, a.User, a.Password, a.Database, a.SSLMode,
	)
}
