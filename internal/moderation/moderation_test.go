package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/launchpad-backend/internal/models"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		action  models.ModerationAction
		want    models.ProductStatus
		wantErr bool
	}{
		{action: "accept", want: models.ProductStatusAccepted},
		{action: "reject", want: models.ProductStatusRejected},
		{action: "approve", wantErr: true},
		{action: "ACCEPT", wantErr: true},
		{action: " accept", wantErr: true},
		{action: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			got, err := Decide(tt.action)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidAction)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecideIgnoresCurrentStatus(t *testing.T) {
	// Status transition matrix:
	// From\Action | accept   | reject
	// ------------|----------|---------
	// pending     | accepted | rejected
	// accepted    | accepted | rejected
	// rejected    | accepted | rejected
	for _, from := range []models.ProductStatus{
		models.ProductStatusPending, models.ProductStatusAccepted, models.ProductStatusRejected,
	} {
		p := models.Product{Status: from}

		status, err := Decide(models.ActionReject)
		require.NoError(t, err)
		p.Status = status
		assert.Equal(t, models.ProductStatusRejected, p.Status, "from %s", from)

		status, err = Decide(models.ActionAccept)
		require.NoError(t, err)
		p.Status = status
		assert.Equal(t, models.ProductStatusAccepted, p.Status, "from %s", from)
	}
}

func TestEngagementUpvote(t *testing.T) {
	p := &models.Product{}
	p.ApplyDefaults(p.CreatedAt)

	for _, email := range []string{"a@x.io", "b@x.io", "a@x.io", "c@x.io", "b@x.io"} {
		if Upvote.Contains(p, email) {
			continue
		}
		Upvote.Apply(p, email)
	}

	assert.Equal(t, []string{"a@x.io", "b@x.io", "c@x.io"}, p.VotedUsers)
	assert.Equal(t, int64(len(p.VotedUsers)), p.Upvotes)
	assert.Empty(t, p.ReportedUsers)
}

func TestEngagementReport(t *testing.T) {
	p := &models.Product{Upvotes: 0}

	assert.False(t, Report.Contains(p, "a@x.io"))
	Report.Apply(p, "a@x.io")

	assert.True(t, Report.Contains(p, "a@x.io"))
	assert.Equal(t, []string{"a@x.io"}, p.ReportedUsers)
	assert.Zero(t, p.Upvotes)
	assert.Equal(t, models.ErrAlreadyReported, Report.Duplicate)
	assert.Equal(t, models.ErrAlreadyVoted, Upvote.Duplicate)
}
