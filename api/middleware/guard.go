package middleware

import (
	"net/http"

	"github.com/angelmondragon/swiftmarket-backend/api/responses"
	"github.com/angelmondragon/swiftmarket-backend/internal/navigation"
	pkgerrors "github.com/angelmondragon/swiftmarket-backend/pkg/errors"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
)

// RequireRoute rejects sessions whose role cannot reach path in the navigation table.
// The error carries the redirect target so clients can land on an allowed page.
func RequireRoute(path string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := StoreFromContext(r.Context())
			if s == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
				return
			}
			role := s.User().Role
			if res := navigation.Resolve(role, path); res.Redirected {
				err := pkgerrors.New(pkgerrors.CodeForbidden, "role cannot access "+path).
					WithDetails(map[string]any{"role": string(role), "redirect": res.Path})
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
