package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourorg/unihaven/internal/domain"
)

// ChatService manages conversations and fans new messages out to live
// subscribers (the websocket stream)
type ChatService struct {
	conversations domain.ConversationRepository
	logger        *slog.Logger

	mu          sync.Mutex
	subscribers map[string]map[chan *domain.Message]struct{}
}

// NewChatService creates a new chat service
func NewChatService(conversations domain.ConversationRepository, logger *slog.Logger) *ChatService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChatService{
		conversations: conversations,
		logger:        logger,
		subscribers:   make(map[string]map[chan *domain.Message]struct{}),
	}
}

// Start creates a conversation between participants
func (s *ChatService) Start(conversationID string, participantIDs []string) (*domain.ChatConversation, error) {
	c := &domain.ChatConversation{
		ID:             conversationID,
		ParticipantIDs: participantIDs,
		StartedAt:      time.Now(),
	}
	if err := s.conversations.Save(c); err != nil {
		return nil, err
	}
	s.logger.Info("conversation started",
		slog.String("conversation_id", conversationID),
		slog.Int("participants", len(participantIDs)),
	)
	return c, nil
}

// SendMessage appends a message to a conversation and publishes it to any
// live subscribers
func (s *ChatService) SendMessage(conversationID, senderID, recipientID, content string) (*domain.Message, error) {
	m := &domain.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		RecipientID:    recipientID,
		Content:        content,
		Timestamp:      time.Now(),
	}
	if err := s.conversations.AppendMessage(conversationID, m); err != nil {
		return nil, err
	}

	s.mu.Lock()
	for ch := range s.subscribers[conversationID] {
		select {
		case ch <- m:
		default: // slow subscriber, drop rather than block the sender
		}
	}
	s.mu.Unlock()

	s.logger.Debug("message sent",
		slog.String("conversation_id", conversationID),
		slog.String("message_id", m.ID),
	)
	return m, nil
}

// Messages returns a conversation's messages in send order
func (s *ChatService) Messages(conversationID string) ([]*domain.Message, error) {
	if _, err := s.conversations.GetByID(conversationID); err != nil {
		return nil, err
	}
	return s.conversations.Messages(conversationID)
}

// Close removes a conversation and its messages and disconnects subscribers
func (s *ChatService) Close(conversationID string) error {
	if err := s.conversations.Delete(conversationID); err != nil {
		return err
	}

	s.mu.Lock()
	for ch := range s.subscribers[conversationID] {
		close(ch)
	}
	delete(s.subscribers, conversationID)
	s.mu.Unlock()

	s.logger.Info("conversation closed", slog.String("conversation_id", conversationID))
	return nil
}

// Subscribe returns a channel of new messages for a conversation. The
// returned cancel func must be called when the subscriber disconnects.
func (s *ChatService) Subscribe(conversationID string) (<-chan *domain.Message, func(), error) {
	if _, err := s.conversations.GetByID(conversationID); err != nil {
		return nil, nil, err
	}

	ch := make(chan *domain.Message, 16)
	s.mu.Lock()
	if s.subscribers[conversationID] == nil {
		s.subscribers[conversationID] = make(map[chan *domain.Message]struct{})
	}
	s.subscribers[conversationID][ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if subs, ok := s.subscribers[conversationID]; ok {
			if _, live := subs[ch]; live {
				delete(subs, ch)
				close(ch)
			}
		}
		s.mu.Unlock()
	}
	return ch, cancel, nil
}
