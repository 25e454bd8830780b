// internal/app/features/frameworks/edit.go
package frameworks

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/unitops/rollcall/internal/app/features/errors"
	frameworkstore "github.com/unitops/rollcall/internal/app/store/frameworks"
	"github.com/unitops/rollcall/internal/app/system/normalize"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"github.com/unitops/rollcall/internal/domain/hierarchy"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeEdit renders the edit form for an existing framework.
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown framework.", "/frameworks")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	fw, err := h.Frameworks.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown framework.", "/frameworks")
		return
	}

	parents, err := h.parentOptions(ctx, id)
	if err != nil {
		h.Log.Error("frameworks: load parents", zap.Error(err))
		uierrors.RenderForbidden(w, r, "Could not load the form.", "/frameworks")
		return
	}

	data := formData{
		BaseVM:  viewdata.NewBaseVM(r, "Edit "+fw.Name, "/frameworks/"+id.Hex()),
		Name:    fw.Name,
		Kind:    fw.Kind,
		Kinds:   frameworkKinds(),
		Parents: parents,
	}
	if fw.ParentID != nil {
		data.Parent = fw.ParentID.Hex()
	}
	templates.Render(w, r, "framework_form", data)
}

// HandleEdit processes the edit form submission.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown framework.", "/frameworks")
		return
	}
	if err := r.ParseForm(); err != nil {
		uierrors.RenderForbidden(w, r, "Invalid form submission.", "/frameworks")
		return
	}

	name := normalize.Name(r.FormValue("name"))
	kind := strings.TrimSpace(r.FormValue("kind"))
	parentHex := strings.TrimSpace(r.FormValue("parent_id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	renderWithError := func(msg string) {
		parents, perr := h.parentOptions(ctx, id)
		if perr != nil {
			h.Log.Error("frameworks: load parents", zap.Error(perr))
		}
		data := formData{
			BaseVM:  viewdata.NewBaseVM(r, "Edit framework", "/frameworks/"+id.Hex()),
			Error:   msg,
			Name:    name,
			Kind:    kind,
			Parent:  parentHex,
			Kinds:   frameworkKinds(),
			Parents: parents,
		}
		templates.Render(w, r, "framework_form", data)
	}

	if name == "" {
		renderWithError("Framework name is required.")
		return
	}

	var parentID *primitive.ObjectID
	if parentHex != "" {
		pid, perr := primitive.ObjectIDFromHex(parentHex)
		if perr != nil {
			renderWithError("Unknown parent framework.")
			return
		}
		// Moving a framework under its own subtree would cut it loose
		// from the tree.
		fws, lerr := h.Frameworks.ListAll(ctx)
		if lerr != nil {
			h.Log.Error("frameworks: list", zap.Error(lerr))
			renderWithError("Could not save the framework.")
			return
		}
		if hierarchy.Contains(fws, id, pid) {
			renderWithError("A framework cannot be moved under its own subtree.")
			return
		}
		parentID = &pid
	}

	err = h.Frameworks.UpdateInfo(ctx, id, name, kind, parentID)
	switch {
	case errors.Is(err, frameworkstore.ErrOwnParent):
		renderWithError("A framework cannot be its own parent.")
		return
	case errors.Is(err, frameworkstore.ErrDuplicateName):
		renderWithError("A framework with that name already exists.")
		return
	case err != nil:
		h.Log.Error("frameworks: update", zap.Error(err))
		renderWithError("Could not save the framework.")
		return
	}

	http.Redirect(w, r, "/frameworks/"+id.Hex(), http.StatusSeeOther)
}
