package service

import (
	"errors"
	"testing"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func TestSubmitAndResolveReport(t *testing.T) {
	s := NewReportService(repository.NewMemoryReportRepository(), nil)

	report, err := s.Submit("rep-1", "resident-1", "listing-1", "", "scam", "asks for cash upfront", nil)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if report.Status != domain.ReportPending {
		t.Fatalf("expected pending, got %s", report.Status)
	}

	if err := s.UpdateStatus("rep-1", domain.ReportInvestigating); err != nil {
		t.Fatalf("update status failed: %v", err)
	}
	if err := s.UpdateStatus("rep-1", domain.ReportApproved); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	// No transition table: an approved report may move back to pending
	if err := s.UpdateStatus("rep-1", domain.ReportPending); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	if err := s.UpdateStatus("missing", domain.ReportApproved); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReportTargetsMayBothBeEmpty(t *testing.T) {
	s := NewReportService(repository.NewMemoryReportRepository(), nil)
	if _, err := s.Submit("rep-1", "resident-1", "", "", "other", "", nil); err != nil {
		t.Fatalf("submit with no targets failed: %v", err)
	}
}

func TestReportFilters(t *testing.T) {
	s := NewReportService(repository.NewMemoryReportRepository(), nil)
	seed := []struct {
		id, listing, user string
	}{
		{"rep-1", "listing-1", ""},
		{"rep-2", "listing-1", ""},
		{"rep-3", "", "user-9"},
	}
	for _, r := range seed {
		if _, err := s.Submit(r.id, "resident-1", r.listing, r.user, "spam", "", nil); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}
	if err := s.UpdateStatus("rep-3", domain.ReportRejected); err != nil {
		t.Fatalf("update status failed: %v", err)
	}

	forListing, err := s.GetForListing("listing-1")
	if err != nil {
		t.Fatalf("get for listing failed: %v", err)
	}
	if len(forListing) != 2 {
		t.Fatalf("expected 2 reports for listing-1, got %d", len(forListing))
	}

	forUser, err := s.GetForUser("user-9")
	if err != nil {
		t.Fatalf("get for user failed: %v", err)
	}
	if len(forUser) != 1 {
		t.Fatalf("expected 1 report for user-9, got %d", len(forUser))
	}

	pending, err := s.GetByStatus(domain.ReportPending)
	if err != nil {
		t.Fatalf("get by status failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending reports, got %d", len(pending))
	}
}
