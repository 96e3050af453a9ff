package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/infrastructure/redis"
	"github.com/yourorg/unihaven/internal/reliability/circuitbreaker"
	"github.com/yourorg/unihaven/internal/reliability/retry"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository implements domain.SessionRepository using Redis
// with TTL keys. Optional alternative to the in-memory store so sessions
// survive a restart; all other entity state remains process-local.
type RedisSessionRepository struct {
	redis    *redis.Client
	breaker  *circuitbreaker.CircuitBreaker
	retryCfg *retry.Config
	logger   *slog.Logger
}

// NewRedisSessionRepository creates a session repository backed by Redis
func NewRedisSessionRepository(client *redis.Client, logger *slog.Logger) *RedisSessionRepository {
	if logger == nil {
		logger = slog.Default()
	}

	cb := circuitbreaker.New(5, 2, 30*time.Second)
	cb.OnStateChange(func(from, to circuitbreaker.State) {
		logger.Warn("redis circuit breaker state change",
			slog.String("from", from.String()),
			slog.String("to", to.String()),
		)
	})

	return &RedisSessionRepository{
		redis:    client,
		breaker:  cb,
		retryCfg: retry.DefaultConfig(),
		logger:   logger,
	}
}

// Create stores a session under session:{id} with a TTL matching its expiry
func (r *RedisSessionRepository) Create(session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}

	_, err = guard(r, "session_create", func(ctx context.Context) (struct{}, error) {
		return struct{}{}, r.redis.Set(ctx, sessionKeyPrefix+session.ID, string(data), ttl)
	})
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	r.logger.Debug("session stored", slog.String("session_id", session.ID))
	return nil
}

// Get retrieves a session; a missing or already-expired key maps to
// ErrSessionNotFound
func (r *RedisSessionRepository) Get(id string) (*domain.Session, error) {
	data, err := guard(r, "session_get", func(ctx context.Context) (string, error) {
		return r.redis.Get(ctx, sessionKeyPrefix+id)
	})
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

// Delete removes a session key
func (r *RedisSessionRepository) Delete(id string) error {
	removed, err := guard(r, "session_delete", func(ctx context.Context) (int64, error) {
		return r.redis.Delete(ctx, sessionKeyPrefix+id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if removed == 0 {
		return fmt.Errorf("session %s: %w", id, domain.ErrSessionNotFound)
	}
	return nil
}

// List returns all live sessions
func (r *RedisSessionRepository) List() ([]*domain.Session, error) {
	keys, err := guard(r, "session_keys", func(ctx context.Context) ([]string, error) {
		return r.redis.Keys(ctx, sessionKeyPrefix+"*")
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*domain.Session, 0, len(keys))
	for _, key := range keys {
		s, err := r.Get(strings.TrimPrefix(key, sessionKeyPrefix))
		if err != nil {
			if errors.Is(err, domain.ErrSessionNotFound) {
				continue // expired between Keys and Get
			}
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// guard wraps a Redis operation with the circuit breaker and retries it
// with backoff
func guard[T any](r *RedisSessionRepository, op string, fn retry.Retryable[T]) (T, error) {
	var zero T
	if err := r.breaker.Allow(); err != nil {
		return zero, err
	}

	result, err := retry.Do(context.Background(), r.retryCfg, r.logger, op, fn)
	if err != nil {
		r.breaker.RecordFailure()
		return zero, err
	}
	r.breaker.RecordSuccess()
	return result, nil
}
