// internal/app/features/soldiers/list.go
package soldiers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/unitops/rollcall/internal/app/features/errors"
	"github.com/unitops/rollcall/internal/app/policy/scopepolicy"
	"github.com/unitops/rollcall/internal/app/system/authz"
	"github.com/unitops/rollcall/internal/app/system/normalize"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type listRow struct {
	ID          string
	Name        string
	Framework   string
	Role        string
	StatusLabel string
	StatusColor string
	Driver      bool
}

type listData struct {
	viewdata.BaseVM
	Rows    []listRow
	Query   string
	CanEdit bool
}

// ServeList handles GET /soldiers. An optional ?q= filters case- and
// accent-insensitively on the folded name.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		h.Log.Error("soldiers: list frameworks", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load soldiers.", "/dashboard")
		return
	}

	visible := scopepolicy.VisibleFrameworkIDs(authz.UserScope(r), authz.UserHomeFramework(r), fws)
	sols, err := h.Soldiers.ListByFrameworkIDs(ctx, visible)
	if err != nil {
		h.Log.Error("soldiers: list", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load soldiers.", "/dashboard")
		return
	}

	q := normalize.QueryParam(r.URL.Query().Get("q"))
	if q != "" {
		folded := text.Fold(q)
		filtered := sols[:0]
		for i := range sols {
			if strings.Contains(sols[i].NameCI, folded) {
				filtered = append(filtered, sols[i])
			}
		}
		sols = filtered
	}

	fwName := make(map[primitive.ObjectID]string, len(fws))
	for i := range fws {
		fwName[fws[i].ID] = fws[i].Name
	}

	now := time.Now().UTC()
	rows := make([]listRow, 0, len(sols))
	for i := range sols {
		s := &sols[i]
		eff := presence.Effective(presence.Status(s.Presence), s.AbsenceUntil, now)
		rows = append(rows, listRow{
			ID:          s.ID.Hex(),
			Name:        s.Name,
			Framework:   fwName[s.FrameworkID],
			Role:        s.Role,
			StatusLabel: presence.LabelOf(eff),
			StatusColor: presence.ColorOf(eff),
			Driver:      s.IsDriver(),
		})
	}

	data := listData{
		BaseVM:  viewdata.NewBaseVM(r, "Soldiers", "/dashboard"),
		Rows:    rows,
		Query:   q,
		CanEdit: authz.CanEdit(r),
	}
	templates.Render(w, r, "soldier_list", data)
}
