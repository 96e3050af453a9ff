package repository

import (
	"fmt"

	"github.com/yourorg/unihaven/internal/domain"
)

// MemoryReviewRepository implements domain.ReviewRepository
type MemoryReviewRepository struct {
	store *memoryStore[*domain.Review]
}

// NewMemoryReviewRepository creates an empty review repository
func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{store: newMemoryStore[*domain.Review]()}
}

// Save stores or overwrites a review
func (r *MemoryReviewRepository) Save(review *domain.Review) error {
	r.store.put(review.ID, review)
	return nil
}

// GetByID retrieves a review by id
func (r *MemoryReviewRepository) GetByID(id string) (*domain.Review, error) {
	rv, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	return rv, nil
}

// List returns all reviews in insertion order
func (r *MemoryReviewRepository) List() ([]*domain.Review, error) {
	return r.store.list(), nil
}

// MemoryReportRepository implements domain.ReportRepository
type MemoryReportRepository struct {
	store *memoryStore[*domain.Report]
}

// NewMemoryReportRepository creates an empty report repository
func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{store: newMemoryStore[*domain.Report]()}
}

// Save stores or overwrites a report
func (r *MemoryReportRepository) Save(report *domain.Report) error {
	r.store.put(report.ID, report)
	return nil
}

// GetByID retrieves a report by id
func (r *MemoryReportRepository) GetByID(id string) (*domain.Report, error) {
	rp, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("report %s: %w", id, domain.ErrNotFound)
	}
	return rp, nil
}

// List returns all reports in insertion order
func (r *MemoryReportRepository) List() ([]*domain.Report, error) {
	return r.store.list(), nil
}
