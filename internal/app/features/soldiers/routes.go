// internal/app/features/soldiers/routes.go
package soldiers

import (
	"github.com/go-chi/chi/v5"
	"github.com/unitops/rollcall/internal/app/system/auth"
	"github.com/unitops/rollcall/internal/app/system/authz"
)

// Routes mounts all Soldier routes under the base path
// (typically "/soldiers" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Read routes: any signed-in operator, scope-filtered in handlers.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.ServeList)
		pr.Get("/{id}", h.ServeView)
	})

	// Presence and rest updates: editing roles; the handlers apply the
	// per-framework presence policy on top.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.RoleAdmin, authz.RoleCommander, authz.RoleSergeant))

		pr.Post("/{id}/presence", h.HandlePresencePost)
		pr.Post("/{id}/rest", h.HandleRestPost)

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
