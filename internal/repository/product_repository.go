// internal/repository/product_repository.go

// Package repository contains the persistence adapters for products and the
// pass-through collections.
package repository

import (
	"context"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/moderation"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// SearchQuery selects one page of products whose name, tag or description
// contains Text, case-insensitively.
type SearchQuery struct {
	Text  string
	Page  int
	Limit int
}

// Normalize clamps non-positive paging values to the defaults and caps Limit.
// Page is capped so that Skip cannot overflow.
func (q SearchQuery) Normalize() SearchQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	if maxPage := math.MaxInt / q.Limit; q.Page > maxPage {
		q.Page = maxPage
	}
	return q
}

// Skip is the number of matches before the requested page.
func (q SearchQuery) Skip() int {
	return (q.Page - 1) * q.Limit
}

// ProductStore is the typed view of the Products collection. Every mutation
// is a single-document update.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) (string, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Search(ctx context.Context, query SearchQuery) (*models.ProductPage, error)
	ListAll(ctx context.Context) ([]models.Product, error)
	ListReported(ctx context.Context) ([]models.Product, error)
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status models.ProductStatus) error
	MarkFeatured(ctx context.Context, id string) error

	// Engage records email against the product at most once. It returns
	// kind.Duplicate when email is already recorded and ErrProductNotFound
	// when the product does not exist.
	Engage(ctx context.Context, id string, kind moderation.Engagement, email string) error

	// Statuses returns the raw status of every product; "" when absent.
	Statuses(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
}

// ParseID converts a hex object id, rejecting malformed input.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", models.ErrInvalidIdentifier, id)
	}
	return oid, nil
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", models.ErrStoreUnavailable, op, err)
}
