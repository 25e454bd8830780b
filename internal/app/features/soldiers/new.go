// internal/app/features/soldiers/new.go
package soldiers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/unitops/rollcall/internal/app/features/errors"
	soldierstore "github.com/unitops/rollcall/internal/app/store/soldiers"
	"github.com/unitops/rollcall/internal/app/system/normalize"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type frameworkOption struct {
	ID   string
	Name string
}

type formData struct {
	viewdata.BaseVM
	Error          string
	Name           string
	PersonalNumber string
	Role           string
	Framework      string
	Driver         bool
	Frameworks     []frameworkOption
}

// ServeNew renders the "New soldier" form.
// Authorization: RequireRole middleware in routes.go.
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	options, err := h.frameworkOptions(ctx)
	if err != nil {
		h.Log.Error("soldiers: load frameworks", zap.Error(err))
		uierrors.RenderForbidden(w, r, "Could not load the form.", "/soldiers")
		return
	}

	data := formData{
		BaseVM:     viewdata.NewBaseVM(r, "New soldier", "/soldiers"),
		Frameworks: options,
	}
	templates.Render(w, r, "soldier_form", data)
}

// HandleCreate processes the New soldier form submission.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.RenderForbidden(w, r, "Invalid form submission.", "/soldiers")
		return
	}

	name := normalize.Name(r.FormValue("name"))
	personal := strings.TrimSpace(r.FormValue("personal_number"))
	role := strings.TrimSpace(r.FormValue("role"))
	fwHex := strings.TrimSpace(r.FormValue("framework_id"))
	driver := r.FormValue("driver") != ""

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	renderWithError := func(msg string) {
		options, oerr := h.frameworkOptions(ctx)
		if oerr != nil {
			h.Log.Error("soldiers: load frameworks", zap.Error(oerr))
		}
		data := formData{
			BaseVM:         viewdata.NewBaseVM(r, "New soldier", "/soldiers"),
			Error:          msg,
			Name:           name,
			PersonalNumber: personal,
			Role:           role,
			Framework:      fwHex,
			Driver:         driver,
			Frameworks:     options,
		}
		templates.Render(w, r, "soldier_form", data)
	}

	if name == "" || personal == "" {
		renderWithError("Name and personal number are required.")
		return
	}
	fwID, err := primitive.ObjectIDFromHex(fwHex)
	if err != nil {
		renderWithError("Choose a framework.")
		return
	}

	var quals []string
	if driver {
		quals = append(quals, models.QualificationDriver)
	}

	s, err := h.Soldiers.Create(ctx, models.Soldier{
		Name:           name,
		PersonalNumber: personal,
		FrameworkID:    fwID,
		Role:           role,
		Qualifications: quals,
	})
	switch {
	case errors.Is(err, soldierstore.ErrDuplicatePersonalNumber):
		renderWithError("A soldier with that personal number already exists.")
		return
	case err != nil:
		h.Log.Error("soldiers: create", zap.Error(err))
		renderWithError("Could not create the soldier.")
		return
	}

	http.Redirect(w, r, "/soldiers/"+s.ID.Hex(), http.StatusSeeOther)
}

func (h *Handler) frameworkOptions(ctx context.Context) ([]frameworkOption, error) {
	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]frameworkOption, 0, len(fws))
	for i := range fws {
		out = append(out, frameworkOption{ID: fws[i].ID.Hex(), Name: fws[i].Name})
	}
	return out, nil
}
