// internal/services/product_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/launchpad-backend/internal/metrics"
	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/moderation"
	"github.com/javajoker/launchpad-backend/internal/repository"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

type ProductService struct {
	store repository.ProductStore
	audit AuditRecorder
}

type CreateProductRequest struct {
	Name         string `json:"name" validate:"required,max=200"`
	Tag          string `json:"tag" validate:"max=100"`
	Description  string `json:"description" validate:"max=5000"`
	Image        string `json:"image,omitempty" validate:"omitempty,url"`
	ExternalLink string `json:"externalLink,omitempty" validate:"omitempty,url"`
	OwnerName    string `json:"ownerName,omitempty" validate:"max=200"`
	OwnerEmail   string `json:"ownerEmail,omitempty" validate:"omitempty,email"`
	OwnerImage   string `json:"ownerImage,omitempty" validate:"omitempty,url"`
}

type DecisionRequest struct {
	Action string `json:"action" validate:"required"`
}

type UpvoteRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
}

type ReportRequest struct {
	ReporterEmail string `json:"reporterEmail" validate:"required,email"`
}

func NewProductService(store repository.ProductStore, audit AuditRecorder) *ProductService {
	if audit == nil {
		audit = NoopAuditRecorder{}
	}
	return &ProductService{store: store, audit: audit}
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:         req.Name,
		Tag:          req.Tag,
		Description:  req.Description,
		Image:        req.Image,
		ExternalLink: req.ExternalLink,
		OwnerName:    req.OwnerName,
		OwnerEmail:   req.OwnerEmail,
		OwnerImage:   req.OwnerImage,
	}

	if _, err := s.store.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.store.GetByID(ctx, id)
}

func (s *ProductService) SearchProducts(ctx context.Context, params utils.PaginationParams) (*models.ProductPage, error) {
	return s.store.Search(ctx, repository.SearchQuery{
		Text:  params.Search,
		Page:  params.Page,
		Limit: params.Limit,
	})
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListAll(ctx)
}

func (s *ProductService) ListReportedProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListReported(ctx)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id, actor string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.record(ctx, &models.ModerationAuditLog{
		ProductID: id,
		Action:    models.AuditActionDelete,
		Actor:     actor,
	})
	return nil
}

// DecideProduct applies a moderator's accept/reject decision and returns the
// resulting status. An unknown action leaves the product untouched.
func (s *ProductService) DecideProduct(ctx context.Context, id, action, actor string) (models.ProductStatus, error) {
	status, err := moderation.Decide(models.ModerationAction(action))
	if err != nil {
		return "", err
	}

	if err := s.store.SetStatus(ctx, id, status); err != nil {
		return "", err
	}

	metrics.RecordDecision(status)
	s.record(ctx, &models.ModerationAuditLog{
		ProductID:     id,
		Action:        models.AuditActionDecision,
		NewStatus:     status,
		Actor:         actor,
		ChangedFields: []string{"status"},
		Metadata:      models.JSONB{"action": action},
	})
	return status, nil
}

func (s *ProductService) FeatureProduct(ctx context.Context, id, actor string) error {
	if err := s.store.MarkFeatured(ctx, id); err != nil {
		return err
	}

	s.record(ctx, &models.ModerationAuditLog{
		ProductID:     id,
		Action:        models.AuditActionFeature,
		Actor:         actor,
		ChangedFields: []string{"isFeatured"},
	})
	return nil
}

func (s *ProductService) UpvoteProduct(ctx context.Context, id string, req *UpvoteRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return s.engage(ctx, id, moderation.Upvote, req.UserEmail)
}

func (s *ProductService) ReportProduct(ctx context.Context, id string, req *ReportRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return s.engage(ctx, id, moderation.Report, req.ReporterEmail)
}

func (s *ProductService) GetStats(ctx context.Context) (models.StatusCounts, error) {
	statuses, err := s.store.Statuses(ctx)
	if err != nil {
		return models.StatusCounts{}, err
	}
	return moderation.Tally(statuses), nil
}

func (s *ProductService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *ProductService) engage(ctx context.Context, id string, kind moderation.Engagement, email string) error {
	err := s.store.Engage(ctx, id, kind, email)

	result := metrics.ResultRecorded
	switch {
	case err == nil:
	case errors.Is(err, kind.Duplicate):
		result = metrics.ResultDuplicate
	case errors.Is(err, models.ErrProductNotFound):
		result = metrics.ResultNotFound
	default:
		result = metrics.ResultError
	}
	metrics.RecordEngagement(kind.Name, result)

	return err
}

// record writes an audit entry. Failures are logged and never surface to the
// caller.
func (s *ProductService) record(ctx context.Context, entry *models.ModerationAuditLog) {
	if err := s.audit.Record(ctx, entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"product_id": entry.ProductID,
			"action":     entry.Action,
		}).Error("Failed to record moderation audit entry")
	}
}
