package domain

import "time"

// Role tags an account instead of subclassing it. The role-specific payload
// lives on the Account and is dispatched by this tag.
type Role string

const (
	RoleResident  Role = "resident"
	RoleProvider  Role = "provider"
	RoleModerator Role = "moderator"
)

// Account represents a registered user of the platform
type Account struct {
	ID           string // caller-supplied, uniqueness not enforced beyond the username check
	Username     string // unique across accounts
	Email        string
	PasswordHash string // bcrypt hashed, never returned in API responses
	Role         Role
	LoggedIn     bool
	CreatedAt    time.Time

	// Exactly one of these is set, matching Role.
	Resident *ResidentProfile
	Provider *ProviderProfile
}

// ResidentProfile carries the student-specific payload
type ResidentProfile struct {
	StudentID     string
	DegreeProgram string
	Preferences   Preferences
}

// ProviderProfile carries the listing-owner payload
type ProviderProfile struct {
	ListingIDs []string
}

// Preferences captures a resident's co-living preferences
type Preferences struct {
	Smoking        bool
	Cleanliness    int
	SleepSchedule  string
	StudyHabit     int
	SocialActivity int
	PetsAllowed    bool
}

// Session is a time-bounded credential proving an authenticated caller
type Session struct {
	ID        string
	AccountID string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Valid reports whether the session has not yet expired
func (s *Session) Valid() bool {
	return time.Now().Before(s.ExpiresAt)
}

// Invalidate collapses the expiry to now
func (s *Session) Invalidate() {
	s.ExpiresAt = time.Now()
}

// Compatibility scores how well two residents match across preference
// dimensions. Score is the mean of the per-dimension detail values.
type Compatibility struct {
	ID      string
	Score   float64
	Details map[string]float64
}

// Calculate recomputes the score from the detail values (0 when empty)
func (c *Compatibility) Calculate() {
	if len(c.Details) == 0 {
		c.Score = 0
		return
	}
	var sum float64
	for _, v := range c.Details {
		sum += v
	}
	c.Score = sum / float64(len(c.Details))
}

// AccountRepository defines data access for accounts
type AccountRepository interface {
	Create(account *Account) error
	GetByID(id string) (*Account, error)
	GetByUsername(username string) (*Account, error)
	Update(account *Account) error
	List() ([]*Account, error)
}

// SessionRepository defines data access for sessions
type SessionRepository interface {
	Create(session *Session) error
	Get(id string) (*Session, error)
	Delete(id string) error
	List() ([]*Session, error)
}
