package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/unihaven/internal/service"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationService *service.NotificationService
	logger              *slog.Logger
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService, logger *slog.Logger) *NotificationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationHandler{notificationService: notificationService, logger: logger}
}

// SendNotificationRequest represents a new notification payload
type SendNotificationRequest struct {
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}

// Send handles POST /api/notifications
func (h *NotificationHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.RecipientID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "recipientId and content are required")
		return
	}

	notification, err := h.notificationService.Send(req.RecipientID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, notification)
}

// MarkRead handles POST /api/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.notificationService.MarkRead(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "marked read"})
}

// ForRecipient handles GET /api/accounts/{id}/notifications
func (h *NotificationHandler) ForRecipient(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationService.GetForRecipient(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}
