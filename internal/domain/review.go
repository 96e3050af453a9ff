package domain

import "time"

// Review is a resident's rating of a provider. Responses and the flag are
// append-only; the review itself is never edited.
type Review struct {
	ID         string
	Rating     int
	Comment    string
	Date       time.Time
	Flagged    bool
	Responses  []string
	ReviewerID string
	ProviderID string
}

// ReviewRepository defines data access for reviews
type ReviewRepository interface {
	Save(review *Review) error
	GetByID(id string) (*Review, error)
	List() ([]*Review, error)
}
