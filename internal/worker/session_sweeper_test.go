package worker

import (
	"testing"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/repository"
)

func TestSweepRemovesExpiredSessions(t *testing.T) {
	accounts := repository.NewMemoryAccountRepository()
	sessions := repository.NewMemorySessionRepository()

	if err := accounts.Create(&domain.Account{ID: "acct-1", Username: "ana", LoggedIn: true}); err != nil {
		t.Fatalf("create account failed: %v", err)
	}

	now := time.Now()
	seed := []*domain.Session{
		{ID: "sess-expired", AccountID: "acct-1", CreatedAt: now.Add(-2 * time.Hour), ExpiresAt: now.Add(-time.Hour)},
		{ID: "sess-live", AccountID: "acct-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
	}
	for _, s := range seed {
		if err := sessions.Create(s); err != nil {
			t.Fatalf("create session failed: %v", err)
		}
	}

	NewSessionSweeper(sessions, accounts, nil, time.Minute).Sweep()

	if _, err := sessions.Get("sess-expired"); err == nil {
		t.Fatal("expected expired session to be removed")
	}
	if _, err := sessions.Get("sess-live"); err != nil {
		t.Fatalf("live session should survive the sweep: %v", err)
	}

	// A live session remains, so the account stays logged in
	account, err := accounts.GetByID("acct-1")
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if !account.LoggedIn {
		t.Fatal("expected account to stay logged in")
	}
}

func TestSweepLogsOutAccountWithNoLiveSessions(t *testing.T) {
	accounts := repository.NewMemoryAccountRepository()
	sessions := repository.NewMemorySessionRepository()

	if err := accounts.Create(&domain.Account{ID: "acct-1", Username: "ana", LoggedIn: true}); err != nil {
		t.Fatalf("create account failed: %v", err)
	}
	if err := sessions.Create(&domain.Session{
		ID:        "sess-expired",
		AccountID: "acct-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}); err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	NewSessionSweeper(sessions, accounts, nil, time.Minute).Sweep()

	account, err := accounts.GetByID("acct-1")
	if err != nil {
		t.Fatalf("get account failed: %v", err)
	}
	if account.LoggedIn {
		t.Fatal("expected account to be logged out after its last session expired")
	}
}
