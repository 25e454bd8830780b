// internal/app/features/reports/routes.go
package reports

import (
	"github.com/go-chi/chi/v5"
	"github.com/unitops/rollcall/internal/app/system/auth"
)

// Routes mounts all Report routes under the base path
// (typically "/reports" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeRollCall)
		pr.Get("/rollcall.csv", h.ServeRollCallCSV)
	})
	return r
}
