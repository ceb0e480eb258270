// internal/services/user_service.go
package services

import (
	"context"
	"fmt"

	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/repository"
	"github.com/javajoker/launchpad-backend/internal/utils"
)

// UserService manages user profile documents. Identity and credentials are
// owned by the upstream auth provider.
type UserService struct {
	users repository.DocumentStore
}

type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"max=200"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user moderator admin"`
}

type UpdateSubscriptionRequest struct {
	SubscriptionStatus string `json:"subscriptionStatus" validate:"required,max=50"`
}

func NewUserService(users repository.DocumentStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.Document, error) {
	return s.users.List(ctx)
}

// CreateUser stores the profile document as given once the email checks out.
func (s *UserService) CreateUser(ctx context.Context, doc models.Document) (string, error) {
	req := CreateUserRequest{Email: doc.String("email"), Name: doc.String("name")}
	if err := utils.ValidateStruct(&req); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}
	return s.users.Insert(ctx, doc)
}

// UpdateRole reports ErrDocumentNotFound when the user is missing or already
// has the role.
func (s *UserService) UpdateRole(ctx context.Context, id string, req *UpdateRoleRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.users.SetByID(ctx, id, models.Document{"role": req.Role})
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return models.ErrDocumentNotFound
	}
	return nil
}

// UpdateSubscription reports ErrNotModified when no user has the email or the
// status is unchanged.
func (s *UserService) UpdateSubscription(ctx context.Context, email string, req *UpdateSubscriptionRequest) (*repository.WriteResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	res, err := s.users.SetWhere(ctx, "email", email, models.Document{"subscriptionStatus": req.SubscriptionStatus})
	if err != nil {
		return nil, err
	}
	if res.ModifiedCount == 0 {
		return nil, models.ErrNotModified
	}
	return res, nil
}
