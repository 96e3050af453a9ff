package service

import (
	"errors"
	"testing"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func newListingFixture(t *testing.T) (*ListingService, *domain.Listing) {
	t.Helper()

	accounts := repository.NewMemoryAccountRepository()
	units := repository.NewMemoryUnitRepository()
	listings := repository.NewMemoryListingRepository()

	owner := &domain.Account{
		ID:        "owner-1",
		Username:  "landlord",
		Role:      domain.RoleProvider,
		Provider:  &domain.ProviderProfile{},
		CreatedAt: time.Now(),
	}
	if err := accounts.Create(owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if err := units.Save(&domain.Unit{ID: "unit-1", Address: "12 College Row", Rooms: 3, Available: true}); err != nil {
		t.Fatalf("create unit: %v", err)
	}

	s := NewListingService(listings, units, accounts, nil)
	listing, err := s.Create("lst-1", "owner-1", "unit-1", ListingData{
		Title:   "Sunny room near campus",
		Price:   450,
		MinStay: 30,
		MaxStay: 365,
	})
	if err != nil {
		t.Fatalf("create listing: %v", err)
	}
	return s, listing
}

func TestListingPublishHidePublish(t *testing.T) {
	s, listing := newListingFixture(t)

	if listing.Status != domain.ListingDraft {
		t.Fatalf("expected draft status, got %s", listing.Status)
	}

	if err := s.Publish(listing.ID); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := s.Hide(listing.ID); err != nil {
		t.Fatalf("hide failed: %v", err)
	}
	if err := s.Publish(listing.ID); err != nil {
		t.Fatalf("re-publish failed: %v", err)
	}

	got, err := s.Get(listing.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != domain.ListingPublished {
		t.Fatalf("expected published, got %s", got.Status)
	}

	// Re-applying the current status passes
	if err := s.Publish(listing.ID); err != nil {
		t.Fatalf("idempotent publish failed: %v", err)
	}
}

func TestListingHideFromDraftRejected(t *testing.T) {
	s, listing := newListingFixture(t)
	if err := s.Hide(listing.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for draft -> hidden, got %v", err)
	}
}

func TestListingDeleteRemovesFromCollection(t *testing.T) {
	s, listing := newListingFixture(t)

	if err := s.Delete(listing.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.Get(listing.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListingEditPartial(t *testing.T) {
	s, listing := newListingFixture(t)

	newPrice := 500.0
	edited, err := s.Edit(listing.ID, domain.ListingUpdate{Price: &newPrice})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if edited.Price != 500 {
		t.Fatalf("expected price 500, got %v", edited.Price)
	}
	if edited.Title != "Sunny room near campus" {
		t.Fatalf("title should be untouched, got %q", edited.Title)
	}
}

func TestFindPublished(t *testing.T) {
	s, listing := newListingFixture(t)

	published, err := s.FindPublished()
	if err != nil {
		t.Fatalf("find published failed: %v", err)
	}
	if len(published) != 0 {
		t.Fatalf("draft listing should not be browsable")
	}

	if err := s.Publish(listing.ID); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	published, err = s.FindPublished()
	if err != nil {
		t.Fatalf("find published failed: %v", err)
	}
	if len(published) != 1 || published[0].ID != listing.ID {
		t.Fatalf("expected one published listing, got %d", len(published))
	}

	all, err := s.FindAll()
	if err != nil {
		t.Fatalf("find all failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected one listing total, got %d", len(all))
	}
}
