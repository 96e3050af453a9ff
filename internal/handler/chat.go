package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/yourorg/unihaven/internal/service"
)

// ChatHandler handles conversation REST endpoints; the live stream lives in
// ChatStreamHandler
type ChatHandler struct {
	chatService *service.ChatService
	logger      *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService, logger *slog.Logger) *ChatHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatHandler{chatService: chatService, logger: logger}
}

// StartConversationRequest represents the conversation creation payload
type StartConversationRequest struct {
	ID             string   `json:"id"`
	ParticipantIDs []string `json:"participantIds"`
}

// Start handles POST /api/conversations
func (h *ChatHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" || len(req.ParticipantIDs) < 2 {
		writeError(w, http.StatusBadRequest, "id and at least two participantIds are required")
		return
	}

	conversation, err := h.chatService.Start(req.ID, req.ParticipantIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, conversation)
}

// SendMessageRequest represents a message payload
type SendMessageRequest struct {
	SenderID    string `json:"senderId"`
	RecipientID string `json:"recipientId"`
	Content     string `json:"content"`
}

// Send handles POST /api/conversations/{id}/messages
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.SenderID == "" || req.Content == "" {
		writeError(w, http.StatusBadRequest, "senderId and content are required")
		return
	}

	message, err := h.chatService.SendMessage(r.PathValue("id"), req.SenderID, req.RecipientID, req.Content)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, message)
}

// Messages handles GET /api/conversations/{id}/messages
func (h *ChatHandler) Messages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatService.Messages(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// Close handles DELETE /api/conversations/{id}
func (h *ChatHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.chatService.Close(r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
