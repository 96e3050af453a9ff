package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/security/audit"
	"github.com/yourorg/unihaven/internal/security/auth"
	"github.com/yourorg/unihaven/internal/security/ratelimit"
)

type AccountContextKey struct{}
type ClaimsContextKey struct{}

// SessionValidator resolves a session id to the live account. Satisfied by
// service.AuthService.
type SessionValidator interface {
	ValidateSession(sessionID string) (*domain.Account, error)
}

func isPublicPath(path string) bool {
	return path == "/healthz" || path == "/readyz" || path == "/metrics" ||
		path == "/api/auth/register" || path == "/api/auth/login" ||
		path == "/api/listings/published" ||
		strings.HasPrefix(path, "/ws/chat/")
}

// SessionMiddleware validates the bearer token and resolves the session it
// names. The stored session stays authoritative: a signed token whose
// session has been logged out or swept is rejected.
func SessionMiddleware(tm *auth.TokenManager, sessions SessionValidator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, `{"error":"missing auth"}`, http.StatusUnauthorized)
				return
			}

			tokenString, err := auth.ExtractToken(authHeader)
			if err != nil {
				http.Error(w, `{"error":"invalid auth"}`, http.StatusUnauthorized)
				return
			}

			claims, err := tm.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
				return
			}

			account, err := sessions.ValidateSession(claims.SessionID)
			if err != nil {
				http.Error(w, `{"error":"session expired"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey{}, claims)
			ctx = context.WithValue(ctx, AccountContextKey{}, account)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RateLimitMiddleware(limiter *ratelimit.Limiter, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			accountID := ""
			if a := r.Context().Value(AccountContextKey{}); a != nil {
				accountID = a.(*domain.Account).ID
			}

			if !limiter.Allow(accountID) {
				http.Error(w, `{"error":"rate limit exceeded"}`, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AuditMiddleware(auditLog *audit.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID := ""
			role := ""
			if c := r.Context().Value(ClaimsContextKey{}); c != nil {
				claims := c.(*auth.Claims)
				accountID = claims.AccountID
				role = claims.Role
			}

			if r.Method == http.MethodPost && r.URL.Path == "/api/reports" {
				auditLog.LogAction(r.Context(), accountID, role, "report", "report", "", "initiated", "")
			}
			if r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/listings/") {
				auditLog.LogAction(r.Context(), accountID, role, "delete", "listing", r.PathValue("id"), "initiated", "")
			}

			next.ServeHTTP(w, r)
		})
	}
}

func GetAccountFromContext(ctx context.Context) *domain.Account {
	if a := ctx.Value(AccountContextKey{}); a != nil {
		return a.(*domain.Account)
	}
	return nil
}

func GetClaimsFromContext(ctx context.Context) *auth.Claims {
	if c := ctx.Value(ClaimsContextKey{}); c != nil {
		return c.(*auth.Claims)
	}
	return nil
}
