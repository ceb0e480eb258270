// internal/services/coupon_service.go
package services

import (
	"context"
	"fmt"

	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/repository"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

type CouponService struct {
	coupons repository.DocumentStore
}

type CreateCouponRequest struct {
	Code     string  `json:"code" validate:"required,coupon_code"`
	Discount float64 `json:"discount" validate:"min=0,max=100"`
}

func NewCouponService(coupons repository.DocumentStore) *CouponService {
	return &CouponService{coupons: coupons}
}

func (s *CouponService) ListCoupons(ctx context.Context) ([]models.Document, error) {
	return s.coupons.List(ctx)
}

func (s *CouponService) CreateCoupon(ctx context.Context, doc models.Document) (string, error) {
	if err := validateCoupon(doc); err != nil {
		return "", err
	}
	return s.coupons.Insert(ctx, doc)
}

// UpdateCoupon sets the given fields. A coupon that exists but already holds
// the values is not an error.
func (s *CouponService) UpdateCoupon(ctx context.Context, id string, fields models.Document) (*repository.WriteResult, error) {
	if _, ok := fields["code"]; ok {
		if err := validateCoupon(fields); err != nil {
			return nil, err
		}
	}

	res, err := s.coupons.SetByID(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, models.ErrDocumentNotFound
	}
	return res, nil
}

func (s *CouponService) DeleteCoupon(ctx context.Context, id string) error {
	res, err := s.coupons.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrDocumentNotFound
	}
	return nil
}

func validateCoupon(doc models.Document) error {
	req := CreateCouponRequest{Code: doc.String("code")}
	if discount, ok := doc["discount"].(float64); ok {
		req.Discount = discount
	}
	if err := utils.ValidateStruct(&req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
