// internal/models/product.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is one launch submission stored in the Products collection.
type Product struct {
	ID            primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Tag           string             `json:"tag" bson:"tag"`
	Description   string             `json:"description" bson:"description"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	ExternalLink  string             `json:"externalLink,omitempty" bson:"externalLink,omitempty"`
	OwnerName     string             `json:"ownerName,omitempty" bson:"ownerName,omitempty"`
	OwnerEmail    string             `json:"ownerEmail,omitempty" bson:"ownerEmail,omitempty"`
	OwnerImage    string             `json:"ownerImage,omitempty" bson:"ownerImage,omitempty"`
	Status        ProductStatus      `json:"status" bson:"status"`
	IsFeatured    bool               `json:"isFeatured" bson:"isFeatured"`
	Upvotes       int64              `json:"upvotes" bson:"upvotes"`
	VotedUsers    []string           `json:"votedUsers" bson:"votedUsers"`
	ReportedUsers []string           `json:"reportedUsers" bson:"reportedUsers"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// ApplyDefaults resets a freshly submitted product to its initial state.
// Moderation and engagement fields are never taken from the caller.
func (p *Product) ApplyDefaults(now time.Time) {
	p.Status = ProductStatusPending
	p.IsFeatured = false
	p.Upvotes = 0
	p.VotedUsers = []string{}
	p.ReportedUsers = []string{}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
}

// HasVoted reports whether email is already in votedUsers.
func (p *Product) HasVoted(email string) bool {
	return containsString(p.VotedUsers, email)
}

// HasReported reports whether email is already in reportedUsers.
func (p *Product) HasReported(email string) bool {
	return containsString(p.ReportedUsers, email)
}

// StatusCounts is the moderation histogram served by GET /products/stats.
type StatusCounts struct {
	Accepted    int64 `json:"accepted"`
	Pending     int64 `json:"pending"`
	Rejected    int64 `json:"rejected"`
	NotReviewed int64 `json:"notReviewed"`
}

func (s StatusCounts) Total() int64 {
	return s.Accepted + s.Pending + s.Rejected + s.NotReviewed
}

// ProductPage is one page of a search plus the unpaginated match count.
type ProductPage struct {
	Items      []Product `json:"items"`
	TotalCount int64     `json:"totalCount"`
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
