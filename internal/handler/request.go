package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/unihaven/internal/service"
)

// RequestHandler handles co-living request endpoints
type RequestHandler struct {
	requestService *service.RequestService
	logger         *slog.Logger
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *service.RequestService, logger *slog.Logger) *RequestHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RequestHandler{requestService: requestService, logger: logger}
}

// SubmitRequestRequest represents the submission payload
type SubmitRequestRequest struct {
	ID          string `json:"id"`
	ListingID   string `json:"listingId"`
	RequesterID string `json:"requesterId"`
	Message     string `json:"message"`
}

// Submit handles POST /api/requests
func (h *RequestHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" || req.ListingID == "" || req.RequesterID == "" {
		writeError(w, http.StatusBadRequest, "id, listingId, and requesterId are required")
		return
	}

	request, err := h.requestService.Submit(req.ID, req.ListingID, req.RequesterID, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

// Decide handles POST /api/requests/{id}/{decision} for approve and reject
func (h *RequestHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	decision := r.PathValue("decision")

	var err error
	var status string
	switch decision {
	case "approve":
		err = h.requestService.Approve(id)
		status = "approved"
	case "reject":
		err = h.requestService.Reject(id)
		status = "rejected"
	default:
		writeError(w, http.StatusBadRequest, "decision must be approve or reject")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

// Get handles GET /api/requests/{id}
func (h *RequestHandler) Get(w http.ResponseWriter, r *http.Request) {
	request, err := h.requestService.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}

// ByListing handles GET /api/listings/{id}/requests
func (h *RequestHandler) ByListing(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.GetByListing(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, requests)
}
