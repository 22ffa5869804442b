package controllers

import (
	"net/http"

	"github.com/angelmondragon/swiftmarket-backend/api/responses"
	"github.com/angelmondragon/swiftmarket-backend/internal/navigation"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
)

type navigationResponse struct {
	navigation.Resolution
	Menu   []navigation.MenuItem `json:"menu"`
	Routes []string              `json:"routes"`
}

// NavigationResolve maps ?path= onto the page the session's role may see.
func NavigationResolve(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := sessionStore(w, r, logg)
		if s == nil {
			return
		}
		role := s.User().Role
		responses.WriteSuccess(w, navigationResponse{
			Resolution: navigation.Resolve(role, r.URL.Query().Get("path")),
			Menu:       navigation.Menu(role),
			Routes:     navigation.Routes(role),
		})
	}
}
