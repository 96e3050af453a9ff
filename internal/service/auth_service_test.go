package service

import (
	"errors"
	"testing"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func newAuthService(ttl time.Duration) *AuthService {
	return NewAuthService(
		repository.NewMemoryAccountRepository(),
		repository.NewMemorySessionRepository(),
		ttl,
		nil,
	)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s := newAuthService(0)

	if _, err := s.Register("u1", "alice", "alice@uni.edu", "Password123", domain.RoleResident); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	_, err := s.Register("u2", "alice", "alice2@uni.edu", "Password123", domain.RoleResident)
	if !errors.Is(err, domain.ErrDuplicateUsername) {
		t.Fatalf("expected ErrDuplicateUsername, got %v", err)
	}
}

func TestLoginAndValidateSession(t *testing.T) {
	s := newAuthService(0)
	if _, err := s.Register("u1", "bob", "bob@uni.edu", "Password123", domain.RoleProvider); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Wrong password
	if _, err := s.Login("bob", "Wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	// Unknown username
	if _, err := s.Login("nobody", "Password123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown username, got %v", err)
	}

	session, err := s.Login("bob", "Password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.ID == "" || session.AccountID != "u1" {
		t.Fatalf("unexpected session: %+v", session)
	}

	account, err := s.ValidateSession(session.ID)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if account == nil {
		t.Fatalf("expected an account")
	}
}

func TestSessionExpiry(t *testing.T) {
	s := newAuthService(10 * time.Millisecond)
	if _, err := s.Register("u1", "carol", "carol@uni.edu", "Password123", domain.RoleResident); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	session, err := s.Login("carol", "Password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := s.ValidateSession(session.ID); err != nil {
		t.Fatalf("expected session valid immediately: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if _, err := s.ValidateSession(session.ID); !errors.Is(err, domain.ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid after expiry, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	s := newAuthService(0)
	if _, err := s.Register("u1", "dave", "dave@uni.edu", "Password123", domain.RoleResident); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	session, err := s.Login("dave", "Password123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := s.Logout(session.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if err := s.Logout(session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on second logout, got %v", err)
	}
	if _, err := s.ValidateSession(session.ID); !errors.Is(err, domain.ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid after logout, got %v", err)
	}
}

func TestUpdatePreferences(t *testing.T) {
	s := newAuthService(0)
	account, err := s.Register("u1", "erin", "erin@uni.edu", "Password123", domain.RoleResident)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if account.Resident == nil {
		t.Fatalf("expected resident profile on registration")
	}

	prefs := domain.Preferences{Cleanliness: 4, SleepSchedule: "early", PetsAllowed: true}
	if err := s.UpdatePreferences("u1", prefs); err != nil {
		t.Fatalf("update preferences failed: %v", err)
	}
	if err := s.CompleteProfile("u1", "CS"); err != nil {
		t.Fatalf("complete profile failed: %v", err)
	}
}
