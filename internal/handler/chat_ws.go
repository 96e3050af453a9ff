package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/yourorg/unihaven/internal/service"
)

// ChatStreamHandler streams new conversation messages over WebSocket
type ChatStreamHandler struct {
	chatService    *service.ChatService
	logger         *slog.Logger
	allowedOrigins []string
}

// NewChatStreamHandler creates a new chat stream handler
func NewChatStreamHandler(chatService *service.ChatService, logger *slog.Logger, allowedOrigins []string) *ChatStreamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatStreamHandler{
		chatService:    chatService,
		logger:         logger,
		allowedOrigins: allowedOrigins,
	}
}

// upgrader is initialized per-request to use instance's allowed origins
func (h *ChatStreamHandler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// Non-browser clients send no origin
				return true
			}
			for _, allowed := range h.allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			h.logger.Warn("websocket origin rejected", slog.String("origin", origin))
			return false
		},
	}
}

// ServeHTTP handles GET /ws/chat/{id}
func (h *ChatStreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conversationID := r.PathValue("id")
	if conversationID == "" {
		http.Error(w, "missing conversation id", http.StatusBadRequest)
		return
	}

	messages, cancel, err := h.chatService.Subscribe(conversationID)
	if err != nil {
		http.Error(w, "conversation not found", http.StatusNotFound)
		return
	}
	defer cancel()

	upgrader := h.getUpgrader()
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer ws.Close()

	h.logger.Debug("chat stream opened", slog.String("conversation_id", conversationID))

	// Drain client frames so close messages are noticed
	clientGone := make(chan struct{})
	go func() {
		defer close(clientGone)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-clientGone:
			return
		case <-ping.C:
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case m, ok := <-messages:
			if !ok {
				// Conversation closed server-side
				ws.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, "conversation closed"))
				return
			}
			payload, err := json.Marshal(m)
			if err != nil {
				continue
			}
			if err := ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				h.logger.Debug("chat stream write failed",
					slog.String("conversation_id", conversationID),
					slog.String("error", err.Error()),
				)
				return
			}
		}
	}
}
