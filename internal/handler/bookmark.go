package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/unihaven/internal/service"
)

// BookmarkHandler handles saved-listing endpoints
type BookmarkHandler struct {
	bookmarkService *service.BookmarkService
	logger          *slog.Logger
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(bookmarkService *service.BookmarkService, logger *slog.Logger) *BookmarkHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookmarkHandler{bookmarkService: bookmarkService, logger: logger}
}

// AddBookmarkRequest represents a new bookmark payload
type AddBookmarkRequest struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId"`
	ListingID string `json:"listingId"`
}

// Add handles POST /api/bookmarks
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" || req.AccountID == "" || req.ListingID == "" {
		writeError(w, http.StatusBadRequest, "id, accountId, and listingId are required")
		return
	}

	bookmark, err := h.bookmarkService.Add(req.ID, req.AccountID, req.ListingID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bookmark)
}

// Remove handles DELETE /api/bookmarks/{id}
func (h *BookmarkHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.bookmarkService.Remove(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ForAccount handles GET /api/accounts/{id}/bookmarks
func (h *BookmarkHandler) ForAccount(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.bookmarkService.GetForAccount(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookmarks)
}
