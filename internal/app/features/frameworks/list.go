// internal/app/features/frameworks/list.go
package frameworks

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
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

// listRow is one framework line in the list view. Counts include the
// framework's whole subtree, which is what a commander actually wants to
// see at a glance.
type listRow struct {
	ID           string
	Name         string
	Kind         string
	SoldierCount int
	Availability string // "m/n" at base over the subtree
	Present      string // "m/n" report-mapped present over the subtree
}

type listData struct {
	viewdata.BaseVM
	Rows    []listRow
	CanEdit bool
}

// ServeList handles GET /frameworks.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		h.Log.Error("frameworks: list", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load frameworks.", "/dashboard")
		return
	}

	visible := scopepolicy.VisibleFrameworkIDs(authz.UserScope(r), authz.UserHomeFramework(r), fws)
	sols, err := h.Soldiers.ListByFrameworkIDs(ctx, visible)
	if err != nil {
		h.Log.Error("frameworks: list soldiers", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load frameworks.", "/dashboard")
		return
	}

	data := listData{
		BaseVM:  viewdata.NewBaseVM(r, "Frameworks", "/dashboard"),
		Rows:    buildRows(fws, visible, sols),
		CanEdit: authz.CanEdit(r),
	}
	templates.Render(w, r, "framework_list", data)
}

// buildRows computes subtree-inclusive counts for each visible framework.
func buildRows(fws []models.Framework, visible []primitive.ObjectID, sols []models.Soldier) []listRow {
	byFramework := make(map[primitive.ObjectID][]models.Soldier)
	for i := range sols {
		byFramework[sols[i].FrameworkID] = append(byFramework[sols[i].FrameworkID], sols[i])
	}

	byID := make(map[primitive.ObjectID]models.Framework, len(fws))
	for i := range fws {
		byID[fws[i].ID] = fws[i]
	}

	rows := make([]listRow, 0, len(visible))
	for _, id := range visible {
		f, ok := byID[id]
		if !ok {
			continue
		}
		var subtree []models.Soldier
		for _, fid := range hierarchy.Descendants(fws, id) {
			subtree = append(subtree, byFramework[fid]...)
		}
		rows = append(rows, listRow{
			ID:           f.ID.Hex(),
			Name:         f.Name,
			Kind:         f.Kind,
			SoldierCount: len(subtree),
			Availability: presence.Availability(subtree),
			Present:      presence.Present(subtree),
		})
	}
	return rows
}
