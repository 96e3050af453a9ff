package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/observability/metrics"
)

// SessionSweeper periodically removes expired sessions so that logged-out
// and timed-out credentials do not accumulate in the store.
type SessionSweeper struct {
	sessions domain.SessionRepository
	accounts domain.AccountRepository
	logger   *slog.Logger
	interval time.Duration
}

// NewSessionSweeper creates a new sweeper
func NewSessionSweeper(
	sessions domain.SessionRepository,
	accounts domain.AccountRepository,
	logger *slog.Logger,
	interval time.Duration,
) *SessionSweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionSweeper{
		sessions: sessions,
		accounts: accounts,
		logger:   logger,
		interval: interval,
	}
}

// Start begins the sweep loop. Runs until the context is cancelled.
func (w *SessionSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("session sweeper started", slog.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("session sweeper stopped")
			return
		case <-ticker.C:
			w.Sweep()
		}
	}
}

// Sweep runs one pass: deletes every expired session and flips the owning
// account's logged-in flag when its last session goes.
func (w *SessionSweeper) Sweep() {
	sessions, err := w.sessions.List()
	if err != nil {
		w.logger.Error("failed to list sessions", slog.String("error", err.Error()))
		metrics.ObserveSessionSweep("error")
		return
	}

	live := 0
	remaining := make(map[string]int) // account id -> live session count
	for _, s := range sessions {
		if s.Valid() {
			live++
			remaining[s.AccountID]++
		}
	}

	removed := 0
	for _, s := range sessions {
		if s.Valid() {
			continue
		}
		if err := w.sessions.Delete(s.ID); err != nil {
			w.logger.Error("failed to delete expired session",
				slog.String("session_id", s.ID),
				slog.String("error", err.Error()),
			)
			metrics.ObserveSessionSweep("error")
			continue
		}
		removed++
		if remaining[s.AccountID] == 0 {
			w.markLoggedOut(s.AccountID)
		}
	}

	metrics.SetSessions(live)
	if removed > 0 {
		metrics.ObserveSessionSweep("success")
		w.logger.Info("swept expired sessions",
			slog.Int("removed", removed),
			slog.Int("live", live),
		)
	}
}

func (w *SessionSweeper) markLoggedOut(accountID string) {
	account, err := w.accounts.GetByID(accountID)
	if err != nil {
		return
	}
	if !account.LoggedIn {
		return
	}
	account.LoggedIn = false
	if err := w.accounts.Update(account); err != nil {
		w.logger.Error("failed to update account",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()),
		)
	}
}
