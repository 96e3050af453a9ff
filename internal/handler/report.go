package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/service"
)

// ReportHandler handles moderation report endpoints
type ReportHandler struct {
	reportService *service.ReportService
	logger        *slog.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService, logger *slog.Logger) *ReportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportHandler{reportService: reportService, logger: logger}
}

// SubmitReportRequest represents a new report payload
type SubmitReportRequest struct {
	ID              string              `json:"id"`
	ReporterID      string              `json:"reporterId"`
	TargetListingID string              `json:"targetListingId"`
	TargetUserID    string              `json:"targetUserId"`
	Reason          string              `json:"reason"`
	Description     string              `json:"description"`
	Attachments     []domain.Attachment `json:"attachments"`
}

// Submit handles POST /api/reports
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" || req.ReporterID == "" {
		writeError(w, http.StatusBadRequest, "id and reporterId are required")
		return
	}

	report, err := h.reportService.Submit(req.ID, req.ReporterID, req.TargetListingID, req.TargetUserID, req.Reason, req.Description, req.Attachments)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, report)
}

// StatusRequest carries the new moderation status
type StatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/reports/{id}/status
func (h *ReportHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	status := domain.ReportStatus(req.Status)
	switch status {
	case domain.ReportPending, domain.ReportInvestigating, domain.ReportApproved, domain.ReportRejected:
	default:
		writeError(w, http.StatusBadRequest, "unknown status")
		return
	}

	if err := h.reportService.UpdateStatus(r.PathValue("id"), status); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

// Get handles GET /api/reports/{id}
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// List handles GET /api/reports filtered by status, listing, or user
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		reports []*domain.Report
		err     error
	)
	switch {
	case q.Get("status") != "":
		reports, err = h.reportService.GetByStatus(domain.ReportStatus(q.Get("status")))
	case q.Get("listing") != "":
		reports, err = h.reportService.GetForListing(q.Get("listing"))
	case q.Get("user") != "":
		reports, err = h.reportService.GetForUser(q.Get("user"))
	default:
		writeError(w, http.StatusBadRequest, "one of status, listing, or user query params is required")
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reports)
}
