package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/observability/metrics"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL bounds a session when no TTL is configured
const DefaultSessionTTL = time.Hour

// AuthService handles registration, login and session validation
type AuthService struct {
	accounts   domain.AccountRepository
	sessions   domain.SessionRepository
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	accounts domain.AccountRepository,
	sessions domain.SessionRepository,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		accounts:   accounts,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Register creates a new account. The id is caller-supplied; only the
// username is checked for conflicts.
func (s *AuthService) Register(id, username, email, password string, role domain.Role) (*domain.Account, error) {
	if id == "" || username == "" || email == "" || password == "" {
		return nil, errors.New("id, username, email, and password are required")
	}

	if existing, err := s.accounts.GetByUsername(username); err == nil && existing != nil {
		return nil, fmt.Errorf("register %q: %w", username, domain.ErrDuplicateUsername)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, errors.New("failed to register account")
	}

	account := &domain.Account{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	switch role {
	case domain.RoleResident:
		account.Resident = &domain.ResidentProfile{
			StudentID:   id,
			Preferences: domain.Preferences{SleepSchedule: "normal"},
		}
	case domain.RoleProvider:
		account.Provider = &domain.ProviderProfile{}
	}

	if err := s.accounts.Create(account); err != nil {
		s.logger.Error("failed to create account", slog.String("error", err.Error()))
		return nil, errors.New("failed to register account")
	}

	s.logger.Info("account registered",
		slog.String("account_id", account.ID),
		slog.String("username", username),
		slog.String("role", string(role)),
	)
	return account, nil
}

// Login authenticates by username and password and issues a session with a
// fixed TTL
func (s *AuthService) Login(username, password string) (*domain.Session, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	account, err := s.accounts.GetByUsername(username)
	if err != nil {
		s.logger.Info("login attempt for unknown username", slog.String("username", username))
		metrics.ObserveLogin("failure")
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		s.logger.Info("login failed with wrong password", slog.String("username", username))
		metrics.ObserveLogin("failure")
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		AccountID: account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Create(session); err != nil {
		s.logger.Error("failed to store session", slog.String("error", err.Error()))
		return nil, errors.New("failed to login")
	}

	account.LoggedIn = true
	if err := s.accounts.Update(account); err != nil {
		s.logger.Error("failed to mark account logged in", slog.String("error", err.Error()))
	}

	metrics.ObserveLogin("success")
	s.logger.Info("account logged in",
		slog.String("account_id", account.ID),
		slog.String("session_id", session.ID),
	)
	return session, nil
}

// Logout invalidates a session by collapsing its expiry and removing it
func (s *AuthService) Logout(sessionID string) error {
	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}

	session.Invalidate()
	if err := s.sessions.Delete(sessionID); err != nil {
		return err
	}

	if account, err := s.accounts.GetByID(session.AccountID); err == nil {
		account.LoggedIn = false
		_ = s.accounts.Update(account)
	}

	s.logger.Info("session invalidated", slog.String("session_id", sessionID))
	return nil
}

// ValidateSession checks a session is live. The account binding is recorded
// on the session but not consulted here: whichever account registered first
// is returned.
func (s *AuthService) ValidateSession(sessionID string) (*domain.Account, error) {
	session, err := s.sessions.Get(sessionID)
	if err != nil || !session.Valid() {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrSessionInvalid)
	}

	accounts, err := s.accounts.List()
	if err != nil || len(accounts) == 0 {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrSessionInvalid)
	}
	return accounts[0], nil
}

// Account retrieves an account by id
func (s *AuthService) Account(id string) (*domain.Account, error) {
	return s.accounts.GetByID(id)
}

// CompleteProfile fills in the resident's degree program
func (s *AuthService) CompleteProfile(accountID, degreeProgram string) error {
	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		return err
	}
	if account.Resident == nil {
		return fmt.Errorf("account %s has no resident profile", accountID)
	}
	if degreeProgram != "" {
		account.Resident.DegreeProgram = degreeProgram
	}
	return s.accounts.Update(account)
}

// UpdatePreferences overwrites a resident's co-living preferences
func (s *AuthService) UpdatePreferences(accountID string, prefs domain.Preferences) error {
	account, err := s.accounts.GetByID(accountID)
	if err != nil {
		return err
	}
	if account.Resident == nil {
		return fmt.Errorf("account %s has no resident profile", accountID)
	}
	account.Resident.Preferences = prefs
	return s.accounts.Update(account)
}
