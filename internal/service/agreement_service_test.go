package service

import (
	"errors"
	"testing"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func TestAgreementLifecycle(t *testing.T) {
	s := NewAgreementService(repository.NewMemoryAgreementRepository(), nil)

	deadline := time.Now().Add(7 * 24 * time.Hour)
	a, err := s.CreateDraft("agr-1", "unit-1", "no smoking indoors", nil, deadline)
	if err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if a.Status != domain.AgreementDraft {
		t.Fatalf("expected draft, got %s", a.Status)
	}

	// Signing a draft is rejected; it must be sent for signatures first
	if err := s.Sign("agr-1", "u1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition signing a draft, got %v", err)
	}

	if err := s.SendForSignatures("agr-1"); err != nil {
		t.Fatalf("send for signatures failed: %v", err)
	}

	// A single signature activates the agreement
	if err := s.Sign("agr-1", "u1"); err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	a, err = s.Get("agr-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if a.Status != domain.AgreementActive {
		t.Fatalf("expected active after one signature, got %s", a.Status)
	}

	// Nothing stops the same account signing again
	if err := s.Sign("agr-1", "u1"); err != nil {
		t.Fatalf("second sign failed: %v", err)
	}
	a, _ = s.Get("agr-1")
	if len(a.SignerIDs) != 2 {
		t.Fatalf("expected 2 recorded signatures, got %d", len(a.SignerIDs))
	}

	if err := s.Cancel("agr-1"); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	a, _ = s.Get("agr-1")
	if a.Status != domain.AgreementCancelled {
		t.Fatalf("expected cancelled, got %s", a.Status)
	}

	// Cancelled is terminal
	if err := s.Sign("agr-1", "u2"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition signing after cancel, got %v", err)
	}
	if err := s.SendForSignatures("agr-1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition resending after cancel, got %v", err)
	}
	if err := s.Cancel("agr-1"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition re-cancelling, got %v", err)
	}
}

func TestAgreementCancelFromDraft(t *testing.T) {
	s := NewAgreementService(repository.NewMemoryAgreementRepository(), nil)
	if _, err := s.CreateDraft("agr-1", "unit-1", "terms", nil, time.Now()); err != nil {
		t.Fatalf("create draft failed: %v", err)
	}
	if err := s.Cancel("agr-1"); err != nil {
		t.Fatalf("cancel from draft failed: %v", err)
	}
}

func TestAgreementNotFound(t *testing.T) {
	s := NewAgreementService(repository.NewMemoryAgreementRepository(), nil)
	if _, err := s.Get("missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
