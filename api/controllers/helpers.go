package controllers

import (
	"net/http"

	"github.com/angelmondragon/swiftmarket-backend/api/middleware"
	"github.com/angelmondragon/swiftmarket-backend/api/responses"
	"github.com/angelmondragon/swiftmarket-backend/internal/store"
	pkgerrors "github.com/angelmondragon/swiftmarket-backend/pkg/errors"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
)

// sessionStore returns the request's store or writes an error and returns nil.
func sessionStore(w http.ResponseWriter, r *http.Request, logg *logger.Logger) *store.Store {
	s := middleware.StoreFromContext(r.Context())
	if s == nil {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
		return nil
	}
	return s
}
