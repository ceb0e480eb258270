// internal/moderation/moderation.go

// Package moderation holds the pure rules of the product review workflow:
// the accept/reject transition, the engagement kinds and the status histogram.
package moderation

import (
	"fmt"

	"github.com/javajoker/launchpad-backend/internal/models"
)

// Decide maps a moderation action to the status it produces. The current
// status is not consulted: deciding an already decided product overwrites it.
func Decide(action models.ModerationAction) (models.ProductStatus, error) {
	switch action {
	case models.ActionAccept:
		return models.ProductStatusAccepted, nil
	case models.ActionReject:
		return models.ProductStatusRejected, nil
	default:
		return "", fmt.Errorf("%w: %q", models.ErrInvalidAction, string(action))
	}
}
