// internal/app/features/frameworks/new.go
package frameworks

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/unitops/rollcall/internal/app/features/errors"
	frameworkstore "github.com/unitops/rollcall/internal/app/store/frameworks"
	"github.com/unitops/rollcall/internal/app/system/normalize"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type parentOption struct {
	ID   string
	Name string
}

type formData struct {
	viewdata.BaseVM
	Error   string
	Name    string
	Kind    string
	Parent  string
	Kinds   []string
	Parents []parentOption
}

func frameworkKinds() []string {
	return []string{
		models.FrameworkCompany,
		models.FrameworkPlatoon,
		models.FrameworkSquad,
		models.FrameworkTeam,
		models.FrameworkOther,
	}
}

// ServeNew renders the "New framework" form.
// Authorization: RequireRole middleware in routes.go.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	parents, err := h.parentOptions(ctx, primitive.NilObjectID)
	if err != nil {
		h.Log.Error("frameworks: load parents", zap.Error(err))
		uierrors.RenderForbidden(w, r, "Could not load the form.", "/frameworks")
		return
	}

	data := formData{
		BaseVM:  viewdata.NewBaseVM(r, "New framework", "/frameworks"),
		Kind:    models.FrameworkOther,
		Kinds:   frameworkKinds(),
		Parents: parents,
	}
	templates.Render(w, r, "framework_form", data)
}

// HandleCreate processes the New framework form submission.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
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
		parents, perr := h.parentOptions(ctx, primitive.NilObjectID)
		if perr != nil {
			h.Log.Error("frameworks: load parents", zap.Error(perr))
		}
		data := formData{
			BaseVM:  viewdata.NewBaseVM(r, "New framework", "/frameworks"),
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
		pid, err := primitive.ObjectIDFromHex(parentHex)
		if err != nil {
			renderWithError("Unknown parent framework.")
			return
		}
		parentID = &pid
	}

	f, err := h.Frameworks.Create(ctx, models.Framework{
		Name:     name,
		Kind:     kind,
		ParentID: parentID,
	})
	switch {
	case errors.Is(err, frameworkstore.ErrDuplicateName):
		renderWithError("A framework with that name already exists.")
		return
	case err != nil:
		h.Log.Error("frameworks: create", zap.Error(err))
		renderWithError("Could not create the framework.")
		return
	}

	http.Redirect(w, r, "/frameworks/"+f.ID.Hex(), http.StatusSeeOther)
}

// parentOptions lists candidate parents, excluding a framework itself when
// editing (a framework cannot be its own parent).
func (h *Handler) parentOptions(ctx context.Context, exclude primitive.ObjectID) ([]parentOption, error) {
	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]parentOption, 0, len(fws))
	for i := range fws {
		if fws[i].ID == exclude {
			continue
		}
		out = append(out, parentOption{ID: fws[i].ID.Hex(), Name: fws[i].Name})
	}
	return out, nil
}
