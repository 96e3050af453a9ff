package service

import (
	"errors"
	"testing"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func TestRequestApproveIsOneShot(t *testing.T) {
	s := NewRequestService(repository.NewMemoryRequestRepository(), nil)

	r, err := s.Submit("req-1", "lst-1", "u1", "Hi, I'd like to join")
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if r.Status != domain.RequestPending {
		t.Fatalf("expected pending, got %s", r.Status)
	}

	if err := s.Approve("req-1"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// Re-applying the same terminal status passes; flipping it does not
	if err := s.Approve("req-1"); err != nil {
		t.Fatalf("re-approve failed: %v", err)
	}
	if err := s.Reject("req-1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition rejecting an approved request, got %v", err)
	}
}

func TestRequestGetByListing(t *testing.T) {
	s := NewRequestService(repository.NewMemoryRequestRepository(), nil)

	if _, err := s.Submit("req-1", "lst-1", "u1", "first"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := s.Submit("req-2", "lst-2", "u2", "second"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := s.Submit("req-3", "lst-1", "u3", "third"); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	got, err := s.GetByListing("lst-1")
	if err != nil {
		t.Fatalf("get by listing failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 requests for lst-1, got %d", len(got))
	}
	if got[0].ID != "req-1" || got[1].ID != "req-3" {
		t.Fatalf("expected insertion order req-1, req-3; got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestRequestNotFound(t *testing.T) {
	s := NewRequestService(repository.NewMemoryRequestRepository(), nil)
	if err := s.Approve("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
