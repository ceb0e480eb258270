package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductApplyDefaults(t *testing.T) {
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	p := Product{Name: "Widget"}
	p.ApplyDefaults(now)

	assert.Equal(t, ProductStatusPending, p.Status)
	assert.False(t, p.IsFeatured)
	assert.Zero(t, p.Upvotes)
	assert.NotNil(t, p.VotedUsers)
	assert.Empty(t, p.VotedUsers)
	assert.NotNil(t, p.ReportedUsers)
	assert.Equal(t, now, p.CreatedAt)
}

func TestProductApplyDefaultsResetsModerationFields(t *testing.T) {
	p := Product{
		Name:          "Widget",
		Status:        ProductStatusAccepted,
		IsFeatured:    true,
		Upvotes:       7,
		VotedUsers:    []string{"a@x.io", "a@x.io"},
		ReportedUsers: []string{"b@x.io"},
	}
	p.ApplyDefaults(time.Now())

	assert.Equal(t, ProductStatusPending, p.Status)
	assert.False(t, p.IsFeatured)
	assert.Zero(t, p.Upvotes)
	assert.Equal(t, []string{}, p.VotedUsers)
	assert.Equal(t, []string{}, p.ReportedUsers)
	assert.Equal(t, int64(len(p.VotedUsers)), p.Upvotes)
}

func TestProductEngagementLookups(t *testing.T) {
	p := Product{VotedUsers: []string{"a@x.io"}, ReportedUsers: []string{"b@x.io"}}

	assert.True(t, p.HasVoted("a@x.io"))
	assert.False(t, p.HasVoted("b@x.io"))
	assert.True(t, p.HasReported("b@x.io"))
	assert.False(t, p.HasReported("a@x.io"))
}

func TestJSONBRoundTrip(t *testing.T) {
	in := JSONB{"action": "accept", "count": float64(2)}

	v, err := in.Value()
	require.NoError(t, err)

	var out JSONB
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)

	var fromString JSONB
	require.NoError(t, fromString.Scan(`{"k":"v"}`))
	assert.Equal(t, "v", fromString["k"])

	var empty JSONB
	require.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)

	assert.Error(t, empty.Scan(42))
}

func TestDocumentHelpers(t *testing.T) {
	d := Document{"_id": "x", "email": "a@x.io", "n": 3}

	assert.Equal(t, "a@x.io", d.String("email"))
	assert.Equal(t, "", d.String("n"))

	trimmed := d.Without("_id")
	assert.NotContains(t, trimmed, "_id")
	assert.Contains(t, d, "_id")
}
