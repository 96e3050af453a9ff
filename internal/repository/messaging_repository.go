package repository

import (
	"fmt"
	"sync"

	"github.com/yourorg/unihaven/internal/domain"
)

// MemoryNotificationRepository implements domain.NotificationRepository
type MemoryNotificationRepository struct {
	store *memoryStore[*domain.Notification]
}

// NewMemoryNotificationRepository creates an empty notification repository
func NewMemoryNotificationRepository() *MemoryNotificationRepository {
	return &MemoryNotificationRepository{store: newMemoryStore[*domain.Notification]()}
}

// Save stores or overwrites a notification
func (r *MemoryNotificationRepository) Save(n *domain.Notification) error {
	r.store.put(n.ID, n)
	return nil
}

// GetByID retrieves a notification by id
func (r *MemoryNotificationRepository) GetByID(id string) (*domain.Notification, error) {
	n, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("notification %s: %w", id, domain.ErrNotFound)
	}
	return n, nil
}

// List returns all notifications in insertion order
func (r *MemoryNotificationRepository) List() ([]*domain.Notification, error) {
	return r.store.list(), nil
}

// MemoryConversationRepository implements domain.ConversationRepository.
// Messages are kept per conversation and dropped with it on close.
type MemoryConversationRepository struct {
	store *memoryStore[*domain.ChatConversation]

	mu       sync.RWMutex
	messages map[string][]*domain.Message
}

// NewMemoryConversationRepository creates an empty conversation repository
func NewMemoryConversationRepository() *MemoryConversationRepository {
	return &MemoryConversationRepository{
		store:    newMemoryStore[*domain.ChatConversation](),
		messages: make(map[string][]*domain.Message),
	}
}

// Save stores or overwrites a conversation
func (r *MemoryConversationRepository) Save(c *domain.ChatConversation) error {
	r.store.put(c.ID, c)
	return nil
}

// GetByID retrieves a conversation by id
func (r *MemoryConversationRepository) GetByID(id string) (*domain.ChatConversation, error) {
	c, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("conversation %s: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// Delete removes a conversation and its messages
func (r *MemoryConversationRepository) Delete(id string) error {
	if !r.store.delete(id) {
		return fmt.Errorf("conversation %s: %w", id, domain.ErrNotFound)
	}
	r.mu.Lock()
	delete(r.messages, id)
	r.mu.Unlock()
	return nil
}

// AppendMessage adds a message to a conversation's ordered log
func (r *MemoryConversationRepository) AppendMessage(conversationID string, m *domain.Message) error {
	if _, ok := r.store.get(conversationID); !ok {
		return fmt.Errorf("conversation %s: %w", conversationID, domain.ErrNotFound)
	}
	r.mu.Lock()
	r.messages[conversationID] = append(r.messages[conversationID], m)
	r.mu.Unlock()
	return nil
}

// Messages returns a conversation's messages in send order
func (r *MemoryConversationRepository) Messages(conversationID string) ([]*domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	msgs := r.messages[conversationID]
	out := make([]*domain.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

// MemoryBookmarkRepository implements domain.BookmarkRepository
type MemoryBookmarkRepository struct {
	store *memoryStore[*domain.Bookmark]
}

// NewMemoryBookmarkRepository creates an empty bookmark repository
func NewMemoryBookmarkRepository() *MemoryBookmarkRepository {
	return &MemoryBookmarkRepository{store: newMemoryStore[*domain.Bookmark]()}
}

// Save stores or overwrites a bookmark
func (r *MemoryBookmarkRepository) Save(b *domain.Bookmark) error {
	r.store.put(b.ID, b)
	return nil
}

// GetByID retrieves a bookmark by id
func (r *MemoryBookmarkRepository) GetByID(id string) (*domain.Bookmark, error) {
	b, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("bookmark %s: %w", id, domain.ErrNotFound)
	}
	return b, nil
}

// Delete removes a bookmark
func (r *MemoryBookmarkRepository) Delete(id string) error {
	if !r.store.delete(id) {
		return fmt.Errorf("bookmark %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns all bookmarks in insertion order
func (r *MemoryBookmarkRepository) List() ([]*domain.Bookmark, error) {
	return r.store.list(), nil
}

// MemorySurveyRepository implements domain.SurveyRepository
type MemorySurveyRepository struct {
	store *memoryStore[*domain.Survey]

	mu        sync.RWMutex
	responses map[string][]*domain.SurveyResponse
}

// NewMemorySurveyRepository creates an empty survey repository
func NewMemorySurveyRepository() *MemorySurveyRepository {
	return &MemorySurveyRepository{
		store:     newMemoryStore[*domain.Survey](),
		responses: make(map[string][]*domain.SurveyResponse),
	}
}

// Save stores or overwrites a survey
func (r *MemorySurveyRepository) Save(s *domain.Survey) error {
	r.store.put(s.ID, s)
	return nil
}

// GetByID retrieves a survey by id
func (r *MemorySurveyRepository) GetByID(id string) (*domain.Survey, error) {
	s, ok := r.store.get(id)
	if !ok {
		return nil, fmt.Errorf("survey %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}

// AppendResponse records a response against a survey
func (r *MemorySurveyRepository) AppendResponse(surveyID string, resp *domain.SurveyResponse) error {
	if _, ok := r.store.get(surveyID); !ok {
		return fmt.Errorf("survey %s: %w", surveyID, domain.ErrNotFound)
	}
	r.mu.Lock()
	r.responses[surveyID] = append(r.responses[surveyID], resp)
	r.mu.Unlock()
	return nil
}

// Responses returns all responses for a survey in submission order
func (r *MemorySurveyRepository) Responses(surveyID string) ([]*domain.SurveyResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	resps := r.responses[surveyID]
	out := make([]*domain.SurveyResponse, len(resps))
	copy(out, resps)
	return out, nil
}
