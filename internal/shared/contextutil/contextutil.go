package contextutil

import (
	"context"

	"go-empdir/internal/domain"

	"go.uber.org/zap"
)

// contextKey is unexported so keys cannot collide with other packages.
type contextKey string

const (
	requestIDKey   contextKey = "request_id"
	currentUserKey contextKey = "current_user"
	loggerKey      contextKey = "logger"
)

// --- Request ID Helpers ---

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- Current User Helpers ---

// WithCurrentUser stores the authenticated caller's identity for the
// duration of the request.
func WithCurrentUser(ctx context.Context, user domain.CurrentUser) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// GetCurrentUser returns the caller's identity. When no identity was
// populated (unauthenticated request, unit test), it returns the
// anonymous identity so hierarchy checks see the lowest authority.
func GetCurrentUser(ctx context.Context) domain.CurrentUser {
	if user, ok := ctx.Value(currentUserKey).(domain.CurrentUser); ok {
		return user
	}
	return domain.Anonymous()
}

// --- Logger Helpers ---

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger returns the request-scoped logger, falling back to
// defaultLogger and finally to a nop logger so callers never get nil.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}
