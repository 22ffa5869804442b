package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/swiftmarket-backend/api/middleware"
	"github.com/angelmondragon/swiftmarket-backend/api/responses"
	"github.com/angelmondragon/swiftmarket-backend/api/validators"
	"github.com/angelmondragon/swiftmarket-backend/internal/navigation"
	"github.com/angelmondragon/swiftmarket-backend/internal/store"
	"github.com/angelmondragon/swiftmarket-backend/pkg/enums"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
)

type sessionEnder interface {
	End(ctx context.Context, id string) bool
}

type sessionResponse struct {
	SessionID string                `json:"session_id"`
	User      models.User           `json:"user"`
	Cart      models.CartSummary    `json:"cart"`
	Filter    store.Filter          `json:"filter"`
	Menu      []navigation.MenuItem `json:"menu"`
	Version   uint64                `json:"version"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

// SessionGet returns the session user, cart summary, filter state and sidebar menu.
func SessionGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		responses.WriteSuccess(w, buildSessionResponse(middleware.SessionIDFromContext(r.Context()), s))
	}
}

// SessionEnd tears the session down. The next request starts a fresh one.
func SessionEnd(registry sessionEnder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ended := registry.End(r.Context(), middleware.SessionIDFromContext(r.Context()))
		responses.WriteSuccess(w, map[string]bool{"ended": ended})
	}
}

// SessionSetRole switches the session user's role.
func SessionSetRole(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}

		var payload setRoleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := s.SetUserRole(enums.UserRole(payload.Role)); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithActorRole(ctx, payload.Role)
			logg.Info(ctx, "session.role_changed")
		}
		responses.WriteSuccess(w, buildSessionResponse(middleware.SessionIDFromContext(ctx), s))
	}
}

func buildSessionResponse(id string, s *store.Store) sessionResponse {
	user := s.User()
	return sessionResponse{
		SessionID: id,
		User:      user,
		Cart:      s.CartSummary(),
		Filter:    s.Filter(),
		Menu:      navigation.Menu(user.Role),
		Version:   s.Version(),
	}
}
