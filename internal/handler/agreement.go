package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/service"
)

// AgreementHandler handles co-living agreement endpoints
type AgreementHandler struct {
	agreementService *service.AgreementService
	logger           *slog.Logger
}

// NewAgreementHandler creates a new agreement handler
func NewAgreementHandler(agreementService *service.AgreementService, logger *slog.Logger) *AgreementHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgreementHandler{agreementService: agreementService, logger: logger}
}

// CreateAgreementRequest represents the draft creation payload
type CreateAgreementRequest struct {
	ID          string              `json:"id"`
	UnitID      string              `json:"unitId"`
	Terms       string              `json:"terms"`
	Attachments []domain.Attachment `json:"attachments"`
	Deadline    time.Time           `json:"deadline"`
}

// Create handles POST /api/agreements
func (h *AgreementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAgreementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" || req.UnitID == "" {
		writeError(w, http.StatusBadRequest, "id and unitId are required")
		return
	}

	agreement, err := h.agreementService.CreateDraft(req.ID, req.UnitID, req.Terms, req.Attachments, req.Deadline)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, agreement)
}

// Send handles POST /api/agreements/{id}/send
func (h *AgreementHandler) Send(w http.ResponseWriter, r *http.Request) {
	if err := h.agreementService.SendForSignatures(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "pending_signatures"})
}

// SignRequest carries the signing party
type SignRequest struct {
	SignerID string `json:"signerId"`
}

// Sign handles POST /api/agreements/{id}/sign
func (h *AgreementHandler) Sign(w http.ResponseWriter, r *http.Request) {
	var req SignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.SignerID == "" {
		writeError(w, http.StatusBadRequest, "signerId is required")
		return
	}

	if err := h.agreementService.Sign(r.PathValue("id"), req.SignerID); err != nil {
		writeServiceError(w, err)
		return
	}

	agreement, err := h.agreementService.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agreement)
}

// Cancel handles POST /api/agreements/{id}/cancel
func (h *AgreementHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.agreementService.Cancel(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// Get handles GET /api/agreements/{id}
func (h *AgreementHandler) Get(w http.ResponseWriter, r *http.Request) {
	agreement, err := h.agreementService.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agreement)
}
