package domain

import "time"

// Notification is a one-way message to an account
type Notification struct {
	ID          string
	RecipientID string
	Content     string
	Read        bool
	SentAt      time.Time
}

// ChatConversation groups messages between participants
type ChatConversation struct {
	ID             string
	ParticipantIDs []string
	StartedAt      time.Time
}

// Message is one chat message inside a conversation
type Message struct {
	ID             string
	ConversationID string
	SenderID       string
	RecipientID    string
	Content        string
	Timestamp      time.Time
}

// Bookmark marks a listing saved by an account
type Bookmark struct {
	ID        string
	AccountID string
	ListingID string
}

// Survey is a roommate-matching questionnaire
type Survey struct {
	ID        string
	Title     string
	Questions []string
	Active    bool
}

// SurveyResponse is one student's answers to a survey
type SurveyResponse struct {
	ID          string
	SurveyID    string
	StudentID   string
	Answers     map[string]string
	SubmittedAt time.Time
}

// NotificationRepository defines data access for notifications
type NotificationRepository interface {
	Save(n *Notification) error
	GetByID(id string) (*Notification, error)
	List() ([]*Notification, error)
}

// ConversationRepository defines data access for chat conversations and
// their messages
type ConversationRepository interface {
	Save(c *ChatConversation) error
	GetByID(id string) (*ChatConversation, error)
	Delete(id string) error
	AppendMessage(conversationID string, m *Message) error
	Messages(conversationID string) ([]*Message, error)
}

// BookmarkRepository defines data access for bookmarks
type BookmarkRepository interface {
	Save(b *Bookmark) error
	GetByID(id string) (*Bookmark, error)
	Delete(id string) error
	List() ([]*Bookmark, error)
}

// SurveyRepository defines data access for surveys and responses
type SurveyRepository interface {
	Save(s *Survey) error
	GetByID(id string) (*Survey, error)
	AppendResponse(surveyID string, r *SurveyResponse) error
	Responses(surveyID string) ([]*SurveyResponse, error)
}
