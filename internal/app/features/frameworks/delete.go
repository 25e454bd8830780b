// internal/app/features/frameworks/delete.go
package frameworks

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	uierrors "github.com/unitops/rollcall/internal/app/features/errors"
	frameworkstore "github.com/unitops/rollcall/internal/app/store/frameworks"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete processes POST /frameworks/{id}/delete.
// The store refuses while children or soldiers still reference the
// framework; we surface that as a friendly message rather than a cascade.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown framework.", "/frameworks")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Frameworks.Delete(ctx, id)
	switch {
	case errors.Is(err, frameworkstore.ErrHasChildren):
		uierrors.RenderForbidden(w, r, "Delete or move the child frameworks first.", "/frameworks/"+id.Hex())
		return
	case errors.Is(err, frameworkstore.ErrHasSoldiers):
		uierrors.RenderForbidden(w, r, "Reassign the framework's soldiers first.", "/frameworks/"+id.Hex())
		return
	case err != nil:
		h.Log.Error("frameworks: delete", zap.Error(err))
		uierrors.RenderForbidden(w, r, "Could not delete the framework.", "/frameworks")
		return
	}

	http.Redirect(w, r, "/frameworks", http.StatusSeeOther)
}
