// internal/app/features/soldiers/delete.go
package soldiers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	uierrors "github.com/unitops/rollcall/internal/app/features/errors"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete processes POST /soldiers/{id}/delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	n, err := h.Soldiers.Delete(ctx, id)
	if err != nil {
		h.Log.Error("soldiers: delete", zap.Error(err))
		uierrors.RenderForbidden(w, r, "Could not delete the soldier.", "/soldiers")
		return
	}
	if n == 0 {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}

	http.Redirect(w, r, "/soldiers", http.StatusSeeOther)
}
