// internal/app/features/soldiers/view.go
package soldiers

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/unitops/rollcall/internal/app/features/errors"
	"github.com/unitops/rollcall/internal/app/policy/presencepolicy"
	"github.com/unitops/rollcall/internal/app/policy/scopepolicy"
	"github.com/unitops/rollcall/internal/app/system/authz"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const auditTrailLimit = 20

// statusOption drives the presence form; the needs-* flags gate the
// absence-date and detail inputs per status.
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

type auditRow struct {
	At       string
	UserName string
	Detail   string
}

type viewData struct {
	viewdata.BaseVM
	Soldier     models.Soldier
	Framework   string
	StatusLabel string
	StatusColor string
	StatusValue string
	Detail      string
	Until       string
	RestUntil   string
	IsDriver    bool
	CanEdit     bool
	Statuses    []statusOption
	Audit       []auditRow
}

// ServeView handles GET /soldiers/{id}: the profile page with the
// presence form, rest window, timeline chart, and audit trail.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		errors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	s, err := h.Soldiers.GetByID(ctx, id)
	if err != nil {
		errors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}

	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		h.Log.Error("soldiers: list frameworks", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load the soldier.", "/soldiers")
		return
	}
	if !scopepolicy.CanAccessFramework(authz.UserScope(r), authz.UserHomeFramework(r), fws, s.FrameworkID) {
		errors.RenderForbidden(w, r, "This soldier is outside your scope.", "/soldiers")
		return
	}

	events, err := h.Audit.ListBySoldier(ctx, id, auditTrailLimit)
	if err != nil {
		h.Log.Error("soldiers: audit trail", zap.Error(err))
	}

	role, _, _, _ := authz.UserCtx(r)
	now := time.Now().UTC()
	eff := presence.Effective(presence.Status(s.Presence), s.AbsenceUntil, now)

	data := viewData{
		BaseVM:      viewdata.NewBaseVM(r, s.Name, "/soldiers"),
		Soldier:     s,
		StatusLabel: presence.LabelOf(eff),
		StatusColor: presence.ColorOf(eff),
		StatusValue: string(eff),
		IsDriver:    s.IsDriver(),
		CanEdit:     presencepolicy.CanEditPresence(role, authz.UserScope(r), authz.UserHomeFramework(r), fws, s.FrameworkID),
		Statuses:    statusOptions(),
	}
	for i := range fws {
		if fws[i].ID == s.FrameworkID {
			data.Framework = fws[i].Name
			break
		}
	}
	if eff == presence.Status(s.Presence) {
		data.Detail = s.PresenceDetail
		if s.AbsenceUntil != nil && presence.RequiresAbsenceDate(eff) {
			data.Until = s.AbsenceUntil.Format("2006-01-02")
		}
	}
	if s.RestUntil != nil && s.RestUntil.After(now) {
		data.RestUntil = s.RestUntil.Format("02/01/2006 15:04")
	}
	for _, e := range events {
		data.Audit = append(data.Audit, auditRow{
			At:       e.At.Format("02/01/2006 15:04"),
			UserName: e.UserName,
			Detail:   e.Detail,
		})
	}

	templates.Render(w, r, "soldier_view", data)
}
