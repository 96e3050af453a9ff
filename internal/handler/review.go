package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/unihaven/internal/service"
)

// ReviewHandler handles provider review endpoints
type ReviewHandler struct {
	reviewService *service.ReviewService
	logger        *slog.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{reviewService: reviewService, logger: logger}
}

// AddReviewRequest represents a new review payload
type AddReviewRequest struct {
	ID         string `json:"id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	ReviewerID string `json:"reviewerId"`
	ProviderID string `json:"providerId"`
}

// Add handles POST /api/reviews
func (h *ReviewHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req AddReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" || req.ReviewerID == "" || req.ProviderID == "" {
		writeError(w, http.StatusBadRequest, "id, reviewerId, and providerId are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}

	review, err := h.reviewService.Add(req.ID, req.Rating, req.Comment, req.ReviewerID, req.ProviderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// Flag handles POST /api/reviews/{id}/flag
func (h *ReviewHandler) Flag(w http.ResponseWriter, r *http.Request) {
	if err := h.reviewService.Flag(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "review flagged"})
}

// RespondRequest carries a response to a review
type RespondRequest struct {
	Response string `json:"response"`
}

// Respond handles POST /api/reviews/{id}/respond
func (h *ReviewHandler) Respond(w http.ResponseWriter, r *http.Request) {
	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Response == "" {
		writeError(w, http.StatusBadRequest, "response is required")
		return
	}

	if err := h.reviewService.AddResponse(r.PathValue("id"), req.Response); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "response added"})
}

// Get handles GET /api/reviews/{id}
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviewService.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// ByProvider handles GET /api/providers/{id}/reviews
func (h *ReviewHandler) ByProvider(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.GetByProvider(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// ByReviewer handles GET /api/accounts/{id}/reviews
func (h *ReviewHandler) ByReviewer(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.GetByReviewer(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
