// internal/services/review_service.go
package services

import (
	"context"
	"fmt"

	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/repository"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

type ReviewService struct {
	reviews repository.DocumentStore
}

type CreateReviewRequest struct {
	ProductID string  `json:"productId" validate:"required,len=24,hexadecimal"`
	Rating    float64 `json:"rating" validate:"min=0,max=5"`
}

func NewReviewService(reviews repository.DocumentStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Document, error) {
	return s.reviews.List(ctx)
}

func (s *ReviewService) CreateReview(ctx context.Context, doc models.Document) (string, error) {
	req := CreateReviewRequest{ProductID: doc.String("productId")}
	if rating, ok := doc["rating"].(float64); ok {
		req.Rating = rating
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}
	return s.reviews.Insert(ctx, doc)
}
