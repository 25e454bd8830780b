// internal/app/features/auditlog/routes.go
package auditlog

import (
	"github.com/go-chi/chi/v5"
	"github.com/unitops/rollcall/internal/app/system/auth"
	"github.com/unitops/rollcall/internal/app/system/authz"
)

// Routes mounts the audit log under the base path (typically "/audit").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(authz.RoleAdmin))
		pr.Get("/", h.Serve)
	})
	return r
}
