// internal/app/features/frameworks/routes.go
package frameworks

import (
	"github.com/go-chi/chi/v5"
	"github.com/unitops/rollcall/internal/app/system/auth"
	"github.com/unitops/rollcall/internal/app/system/authz"
)

// Routes mounts all Framework routes under the base path
// (typically "/frameworks" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Read routes: any signed-in operator, scope-filtered in handlers.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
	})

	// Structure changes: admins and commanders.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.RoleAdmin, authz.RoleCommander))

		pr.Get("/new", h.ServeNew)
		pr.Post("/new", h.HandleCreate)
		pr.Get("/{id}/edit", h.ServeEdit)
		pr.Post("/{id}/edit", h.HandleEdit)
	})

	// Deletion: admin only.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.RoleAdmin))
		pr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}
