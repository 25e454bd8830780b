// internal/app/features/timeline/routes.go
package timeline

import (
	"github.com/go-chi/chi/v5"
	"github.com/unitops/rollcall/internal/app/system/auth"
)

// Routes mounts the timeline JSON endpoints under the base path
// (typically "/timeline" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/{id}", h.ServeItems)
		pr.Get("/{id}/availability", h.ServeAvailability)
	})
	return r
}
