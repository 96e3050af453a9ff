package service

import (
	"errors"
	"testing"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func TestAddAndRemoveBookmark(t *testing.T) {
	s := NewBookmarkService(repository.NewMemoryBookmarkRepository(), nil)

	if _, err := s.Add("bm-1", "user-1", "listing-1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := s.Add("bm-2", "user-1", "listing-2"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := s.Add("bm-3", "user-2", "listing-1"); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	list, err := s.GetForAccount("user-1")
	if err != nil {
		t.Fatalf("get for account failed: %v", err)
	}
	if len(list) != 2 || list[0].ListingID != "listing-1" {
		t.Fatalf("unexpected bookmarks: %+v", list)
	}

	if err := s.Remove("bm-1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := s.Remove("bm-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double remove, got %v", err)
	}

	list, err = s.GetForAccount("user-1")
	if err != nil {
		t.Fatalf("get for account failed: %v", err)
	}
	if len(list) != 1 || list[0].ID != "bm-2" {
		t.Fatalf("unexpected bookmarks after remove: %+v", list)
	}
}
