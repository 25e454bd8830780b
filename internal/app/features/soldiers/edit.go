// internal/app/features/soldiers/edit.go
package soldiers

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/unitops/rollcall/internal/app/features/errors"
	"github.com/unitops/rollcall/internal/app/system/normalize"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeEdit renders the edit form for an existing soldier.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	s, err := h.Soldiers.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}
	options, err := h.frameworkOptions(ctx)
	if err != nil {
		h.Log.Error("soldiers: load frameworks", zap.Error(err))
		uierrors.RenderForbidden(w, r, "Could not load the form.", "/soldiers")
		return
	}

	data := formData{
		BaseVM:         viewdata.NewBaseVM(r, "Edit "+s.Name, "/soldiers/"+id.Hex()),
		Name:           s.Name,
		PersonalNumber: s.PersonalNumber,
		Role:           s.Role,
		Framework:      s.FrameworkID.Hex(),
		Driver:         s.IsDriver(),
		Frameworks:     options,
	}
	templates.Render(w, r, "soldier_form", data)
}

// HandleEdit processes the edit form submission. The personal number is
// immutable after creation; the form does not resubmit it.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}
	if err := r.ParseForm(); err != nil {
		uierrors.RenderForbidden(w, r, "Invalid form submission.", "/soldiers/"+id.Hex())
		return
	}

	name := normalize.Name(r.FormValue("name"))
	role := strings.TrimSpace(r.FormValue("role"))
	fwHex := strings.TrimSpace(r.FormValue("framework_id"))
	driver := r.FormValue("driver") != ""

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	s, err := h.Soldiers.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}

	if name == "" {
		uierrors.RenderForbidden(w, r, "Soldier name is required.", "/soldiers/"+id.Hex()+"/edit")
		return
	}

	var quals []string
	if driver {
		quals = append(quals, models.QualificationDriver)
	}
	if err := h.Soldiers.UpdateInfo(ctx, id, name, role, quals); err != nil {
		h.Log.Error("soldiers: update", zap.Error(err))
		uierrors.RenderForbidden(w, r, "Could not save the soldier.", "/soldiers/"+id.Hex())
		return
	}

	if fwHex != "" && fwHex != s.FrameworkID.Hex() {
		fwID, perr := primitive.ObjectIDFromHex(fwHex)
		if perr != nil {
			uierrors.RenderForbidden(w, r, "Unknown framework.", "/soldiers/"+id.Hex())
			return
		}
		if err := h.Soldiers.Reassign(ctx, id, fwID); err != nil {
			h.Log.Error("soldiers: reassign", zap.Error(err))
			uierrors.RenderForbidden(w, r, "Could not move the soldier.", "/soldiers/"+id.Hex())
			return
		}
	}

	http.Redirect(w, r, "/soldiers/"+id.Hex(), http.StatusSeeOther)
}
