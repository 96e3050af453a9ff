package service

import (
	"log/slog"

	"github.com/yourorg/unihaven/internal/domain"
)

// BookmarkService manages saved listings per account
type BookmarkService struct {
	bookmarks domain.BookmarkRepository
	logger    *slog.Logger
}

// NewBookmarkService creates a new bookmark service
func NewBookmarkService(bookmarks domain.BookmarkRepository, logger *slog.Logger) *BookmarkService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookmarkService{bookmarks: bookmarks, logger: logger}
}

// Add saves a listing for an account
func (s *BookmarkService) Add(id, accountID, listingID string) (*domain.Bookmark, error) {
	b := &domain.Bookmark{ID: id, AccountID: accountID, ListingID: listingID}
	if err := s.bookmarks.Save(b); err != nil {
		return nil, err
	}
	s.logger.Debug("bookmark added",
		slog.String("bookmark_id", id),
		slog.String("listing_id", listingID),
	)
	return b, nil
}

// Remove deletes a bookmark
func (s *BookmarkService) Remove(id string) error {
	return s.bookmarks.Delete(id)
}

// GetForAccount returns an account's bookmarks in insertion order
func (s *BookmarkService) GetForAccount(accountID string) ([]*domain.Bookmark, error) {
	all, err := s.bookmarks.List()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Bookmark, 0)
	for _, b := range all {
		if b.AccountID == accountID {
			out = append(out, b)
		}
	}
	return out, nil
}
