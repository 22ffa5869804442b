package middleware

import (
	"context"
	"net/http"

	"github.com/angelmondragon/swiftmarket-backend/internal/session"
	"github.com/angelmondragon/swiftmarket-backend/internal/store"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
)

type sessionOpener interface {
	Open(ctx context.Context, id string) (string, *store.Store, bool)
}

// Session resolves the X-Session-Id header to a store, creating a session when the header
// is missing or unknown, and echoes the effective id back on the response.
func Session(registry sessionOpener, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id, s, _ := registry.Open(ctx, r.Header.Get(session.HeaderName))
			w.Header().Set(session.HeaderName, id)

			ctx = WithSession(ctx, id, s)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, id)
				ctx = logg.WithActorRole(ctx, string(s.User().Role))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
