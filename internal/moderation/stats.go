// internal/moderation/stats.go
package moderation

import (
	"strings"

	"github.com/javajoker/launchpad-backend/internal/models"
)

// Bucket names one histogram column of StatusCounts.
type Bucket string

const (
	BucketAccepted    Bucket = "accepted"
	BucketPending     Bucket = "pending"
	BucketRejected    Bucket = "rejected"
	BucketNotReviewed Bucket = "notReviewed"
)

// Classify puts a raw stored status into its histogram bucket. Legacy
// "under review" counts as pending; empty or unknown values are not reviewed.
func Classify(status string) Bucket {
	switch strings.ToLower(status) {
	case "accepted":
		return BucketAccepted
	case "pending", "under review":
		return BucketPending
	case "rejected":
		return BucketRejected
	default:
		return BucketNotReviewed
	}
}

// Tally builds the histogram over a snapshot of stored statuses.
func Tally(statuses []string) models.StatusCounts {
	var counts models.StatusCounts
	for _, s := range statuses {
		switch Classify(s) {
		case BucketAccepted:
			counts.Accepted++
		case BucketPending:
			counts.Pending++
		case BucketRejected:
			counts.Rejected++
		default:
			counts.NotReviewed++
		}
	}
	return counts
}
