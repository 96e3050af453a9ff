package audit

import (
	"context"
	"log/slog"
	"time"
)

type Logger struct {
	logger *slog.Logger
}

func NewLogger(logger *slog.Logger) *Logger {
	return &Logger{logger: logger}
}

func (al *Logger) LogAction(ctx context.Context, accountID, role, action, resource, resourceID, status, details string) {
	requestID := ""
	if reqID := ctx.Value("request_id"); reqID != nil {
		requestID = reqID.(string)
	}

	al.logger.Info("audit",
		slog.String("action", action),
		slog.String("resource", resource),
		slog.String("resource_id", resourceID),
		slog.String("account_id", accountID),
		slog.String("role", role),
		slog.String("status", status),
		slog.String("details", details),
		slog.String("request_id", requestID),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *Logger) LogLogin(ctx context.Context, accountID, status, details string) {
	al.LogAction(ctx, accountID, "", "login", "session", "", status, details)
}

func (al *Logger) LogReport(ctx context.Context, accountID, role, reportID, status, details string) {
	al.LogAction(ctx, accountID, role, "report", "report", reportID, status, details)
}

func (al *Logger) LogDenied(ctx context.Context, accountID, role, reason string) {
	al.LogAction(ctx, accountID, role, "access_denied", "api", "", "denied", reason)
}
