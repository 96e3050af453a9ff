package service

import (
	"errors"
	"testing"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func TestAddAndFilterReviews(t *testing.T) {
	s := NewReviewService(repository.NewMemoryReviewRepository(), nil)

	if _, err := s.Add("rev-1", 4, "good place", "resident-1", "provider-1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := s.Add("rev-2", 2, "noisy", "resident-2", "provider-1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := s.Add("rev-3", 5, "", "resident-1", "provider-2"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	byProvider, err := s.GetByProvider("provider-1")
	if err != nil {
		t.Fatalf("get by provider failed: %v", err)
	}
	if len(byProvider) != 2 {
		t.Fatalf("expected 2 reviews for provider-1, got %d", len(byProvider))
	}

	byReviewer, err := s.GetByReviewer("resident-1")
	if err != nil {
		t.Fatalf("get by reviewer failed: %v", err)
	}
	if len(byReviewer) != 2 {
		t.Fatalf("expected 2 reviews by resident-1, got %d", len(byReviewer))
	}
}

func TestFlagAndRespond(t *testing.T) {
	s := NewReviewService(repository.NewMemoryReviewRepository(), nil)
	if _, err := s.Add("rev-1", 1, "spam", "resident-1", "provider-1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if err := s.Flag("rev-1"); err != nil {
		t.Fatalf("flag failed: %v", err)
	}
	if err := s.AddResponse("rev-1", "we have looked into this"); err != nil {
		t.Fatalf("add response failed: %v", err)
	}

	review, err := s.Get("rev-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !review.Flagged {
		t.Fatal("expected review to be flagged")
	}
	if len(review.Responses) != 1 {
		t.Fatalf("expected 1 response, got %d", len(review.Responses))
	}

	if err := s.Flag("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
