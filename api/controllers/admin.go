package controllers

import (
	"net/http"

	"github.com/angelmondragon/swiftmarket-backend/api/responses"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
)

// AdminOverview returns marketplace totals for the admin dashboard.
func AdminOverview(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		responses.WriteSuccess(w, s.Overview())
	}
}
