package middleware

import (
	"context"

	"github.com/angelmondragon/swiftmarket-backend/internal/store"
)

type contextKey string

const (
	ctxSessionID contextKey = "session_id"
	ctxStore     contextKey = "session_store"
)

func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxSessionID).(string); ok {
		return v
	}
	return ""
}

// StoreFromContext returns the session's store, or nil outside the Session middleware.
func StoreFromContext(ctx context.Context) *store.Store {
	if ctx == nil {
		return nil
	}
	if v, ok := ctx.Value(ctxStore).(*store.Store); ok {
		return v
	}
	return nil
}

// WithSession injects the session identifier and its store into the context.
func WithSession(ctx context.Context, sessionID string, s *store.Store) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ctxSessionID, sessionID)
	return context.WithValue(ctx, ctxStore, s)
}
