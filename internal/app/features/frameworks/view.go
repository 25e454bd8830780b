// internal/app/features/frameworks/view.go
package frameworks

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/unitops/rollcall/internal/app/features/errors"
	"github.com/unitops/rollcall/internal/app/policy/scopepolicy"
	"github.com/unitops/rollcall/internal/app/system/authz"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"github.com/unitops/rollcall/internal/domain/hierarchy"
	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// soldierRow is one soldier line in the framework view.
type soldierRow struct {
	ID          string
	Name        string
	Role        string
	StatusLabel string
	StatusColor string
	Detail      string
	Until       string // empty unless an absence date applies
}

type childRow struct {
	ID           string
	Name         string
	Kind         string
	Availability string
}

// statusOption drives the inline presence form; the needs-* flags let the
// page show the absence-date and detail inputs only when the chosen status
// actually requires them.
type statusOption struct {
	Value       string
	Label       string
	NeedsUntil  bool
	NeedsDetail bool
}

func statusOptions() []statusOption {
	all := presence.All()
	out := make([]statusOption, 0, len(all))
	for _, s := range all {
		out = append(out, statusOption{
			Value:       string(s),
			Label:       presence.LabelOf(s),
			NeedsUntil:  presence.RequiresAbsenceDate(s),
			NeedsDetail: presence.RequiresCustomText(s),
		})
	}
	return out
}

type viewData struct {
	viewdata.BaseVM
	Framework    models.Framework
	Children     []childRow
	Soldiers     []soldierRow
	Availability string
	CanEdit      bool
	Statuses     []statusOption
}

// ServeView handles GET /frameworks/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		errors.RenderForbidden(w, r, "Unknown framework.", "/frameworks")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		h.Log.Error("frameworks: list", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load the framework.", "/frameworks")
		return
	}

	if !scopepolicy.CanAccessFramework(authz.UserScope(r), authz.UserHomeFramework(r), fws, id) {
		errors.RenderForbidden(w, r, "This framework is outside your scope.", "/frameworks")
		return
	}

	var fw models.Framework
	found := false
	for i := range fws {
		if fws[i].ID == id {
			fw, found = fws[i], true
			break
		}
	}
	if !found {
		errors.RenderForbidden(w, r, "Unknown framework.", "/frameworks")
		return
	}

	subtree := hierarchy.Descendants(fws, id)
	sols, err := h.Soldiers.ListByFrameworkIDs(ctx, subtree)
	if err != nil {
		h.Log.Error("frameworks: list soldiers", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load the framework.", "/frameworks")
		return
	}

	now := time.Now().UTC()
	rows := make([]soldierRow, 0, len(sols))
	for i := range sols {
		rows = append(rows, soldierViewRow(sols[i], now))
	}

	byFramework := make(map[primitive.ObjectID][]models.Soldier)
	for i := range sols {
		byFramework[sols[i].FrameworkID] = append(byFramework[sols[i].FrameworkID], sols[i])
	}
	var children []childRow
	for i := range fws {
		if fws[i].ParentID == nil || *fws[i].ParentID != id {
			continue
		}
		var sub []models.Soldier
		for _, fid := range hierarchy.Descendants(fws, fws[i].ID) {
			sub = append(sub, byFramework[fid]...)
		}
		children = append(children, childRow{
			ID:           fws[i].ID.Hex(),
			Name:         fws[i].Name,
			Kind:         fws[i].Kind,
			Availability: presence.Availability(sub),
		})
	}

	data := viewData{
		BaseVM:       viewdata.NewBaseVM(r, fw.Name, "/frameworks"),
		Framework:    fw,
		Children:     children,
		Soldiers:     rows,
		Availability: presence.Availability(sols),
		CanEdit:      authz.CanEdit(r),
		Statuses:     statusOptions(),
	}
	templates.Render(w, r, "framework_view", data)
}

// soldierViewRow renders a soldier with their effective status: a lapsed
// absence shows as at base even before the stored record is refreshed.
func soldierViewRow(s models.Soldier, now time.Time) soldierRow {
	eff := presence.Effective(presence.Status(s.Presence), s.AbsenceUntil, now)

	row := soldierRow{
		ID:          s.ID.Hex(),
		Name:        s.Name,
		Role:        s.Role,
		StatusLabel: presence.LabelOf(eff),
		StatusColor: presence.ColorOf(eff),
	}
	if eff == presence.Status(s.Presence) {
		row.Detail = s.PresenceDetail
		if presence.RequiresAbsenceDate(eff) && s.AbsenceUntil != nil {
			row.Until = s.AbsenceUntil.Format("02/01/2006")
		}
	}
	return row
}
