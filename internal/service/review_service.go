package service

import (
	"log/slog"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
)

// ReviewService manages reviews of providers and their moderation responses
type ReviewService struct {
	reviews domain.ReviewRepository
	logger  *slog.Logger
}

// NewReviewService creates a new review service
func NewReviewService(reviews domain.ReviewRepository, logger *slog.Logger) *ReviewService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewService{reviews: reviews, logger: logger}
}

// Add stores a new review
func (s *ReviewService) Add(id string, rating int, comment, reviewerID, providerID string) (*domain.Review, error) {
	review := &domain.Review{
		ID:         id,
		Rating:     rating,
		Comment:    comment,
		Date:       time.Now(),
		ReviewerID: reviewerID,
		ProviderID: providerID,
	}
	if err := s.reviews.Save(review); err != nil {
		return nil, err
	}
	s.logger.Info("review added",
		slog.String("review_id", id),
		slog.String("provider_id", providerID),
		slog.Int("rating", rating),
	)
	return review, nil
}

// Flag marks a review for moderator attention
func (s *ReviewService) Flag(id string) error {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		return err
	}
	review.Flagged = true
	if err := s.reviews.Save(review); err != nil {
		return err
	}
	s.logger.Info("review flagged", slog.String("review_id", id))
	return nil
}

// AddResponse appends a moderator or owner response to a review
func (s *ReviewService) AddResponse(id, response string) error {
	review, err := s.reviews.GetByID(id)
	if err != nil {
		return err
	}
	review.Responses = append(review.Responses, response)
	return s.reviews.Save(review)
}

// Get retrieves a review by id
func (s *ReviewService) Get(id string) (*domain.Review, error) {
	return s.reviews.GetByID(id)
}

// GetByProvider returns all reviews targeting a provider
func (s *ReviewService) GetByProvider(providerID string) ([]*domain.Review, error) {
	return s.filter(func(r *domain.Review) bool { return r.ProviderID == providerID })
}

// GetByReviewer returns all reviews written by a resident
func (s *ReviewService) GetByReviewer(reviewerID string) ([]*domain.Review, error) {
	return s.filter(func(r *domain.Review) bool { return r.ReviewerID == reviewerID })
}

func (s *ReviewService) filter(keep func(*domain.Review) bool) ([]*domain.Review, error) {
	all, err := s.reviews.List()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Review, 0)
	for _, r := range all {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}
