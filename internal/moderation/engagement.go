// internal/moderation/engagement.go
package moderation

import "github.com/javajoker/launchpad-backend/internal/models"

// Engagement is a once-per-user action recorded against a product.
type Engagement struct {
	Name string
	// SetField is the document array holding the users who engaged.
	SetField string
	// CounterField is incremented together with SetField; empty for no counter.
	CounterField string
	// Duplicate is returned when the user is already in SetField.
	Duplicate error
}

var (
	Upvote = Engagement{
		Name:         "upvote",
		SetField:     "votedUsers",
		CounterField: "upvotes",
		Duplicate:    models.ErrAlreadyVoted,
	}

	Report = Engagement{
		Name:      "report",
		SetField:  "reportedUsers",
		Duplicate: models.ErrAlreadyReported,
	}
)

// Contains reports whether email already engaged with p in this way.
func (e Engagement) Contains(p *models.Product, email string) bool {
	switch e.SetField {
	case Upvote.SetField:
		return p.HasVoted(email)
	case Report.SetField:
		return p.HasReported(email)
	}
	return false
}

// Apply records email on p. Callers must check Contains first, under the
// same lock or filter that guards the write.
func (e Engagement) Apply(p *models.Product, email string) {
	switch e.SetField {
	case Upvote.SetField:
		p.VotedUsers = append(p.VotedUsers, email)
	case Report.SetField:
		p.ReportedUsers = append(p.ReportedUsers, email)
	}
	if e.CounterField != "" {
		p.Upvotes++
	}
}
