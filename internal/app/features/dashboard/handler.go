// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/unitops/rollcall/internal/app/features/errors"
	"github.com/unitops/rollcall/internal/app/policy/scopepolicy"
	frameworkstore "github.com/unitops/rollcall/internal/app/store/frameworks"
	missionstore "github.com/unitops/rollcall/internal/app/store/missions"
	soldierstore "github.com/unitops/rollcall/internal/app/store/soldiers"
	"github.com/unitops/rollcall/internal/app/system/authz"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the operator dashboard.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Soldiers   *soldierstore.Store
	Frameworks *frameworkstore.Store
	Missions   *missionstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Soldiers:   soldierstore.New(db),
		Frameworks: frameworkstore.New(db),
		Missions:   missionstore.New(db),
	}
}

// statusRow is one line of the per-status breakdown.
type statusRow struct {
	Label string
	Color string
	Count int
}

type dashboardData struct {
	viewdata.BaseVM
	FrameworkCount int
	SoldierCount   int
	OpenMissions   int
	Availability   string // raw at-base over total, "m/n"
	Present        string // report-mapped present over total, "m/n"
	Breakdown      []statusRow
}

// Serve handles GET /dashboard.
// Everything shown is limited to the operator's visible frameworks.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		h.Log.Error("dashboard: list frameworks", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load dashboard data.", "/")
		return
	}

	visible := scopepolicy.VisibleFrameworkIDs(authz.UserScope(r), authz.UserHomeFramework(r), fws)
	sols, err := h.Soldiers.ListByFrameworkIDs(ctx, visible)
	if err != nil {
		h.Log.Error("dashboard: list soldiers", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load dashboard data.", "/")
		return
	}

	var open int
	if ms, err := h.Missions.ListByFrameworkIDs(ctx, visible); err != nil {
		h.Log.Error("dashboard: list missions", zap.Error(err))
	} else {
		for i := range ms {
			if ms[i].Status == models.MissionOpen {
				open++
			}
		}
	}

	data := dashboardData{
		BaseVM:         viewdata.NewBaseVM(r, "Dashboard", "/"),
		FrameworkCount: len(visible),
		SoldierCount:   len(sols),
		OpenMissions:   open,
		Availability:   presence.Availability(sols),
		Present:        presence.Present(sols),
		Breakdown:      breakdown(sols, time.Now().UTC()),
	}

	templates.Render(w, r, "dashboard", data)
}

// breakdown tallies soldiers by their effective status, in catalog order.
func breakdown(sols []models.Soldier, now time.Time) []statusRow {
	counts := make(map[presence.Status]int)
	for i := range sols {
		eff := presence.Effective(presence.Status(sols[i].Presence), sols[i].AbsenceUntil, now)
		counts[eff]++
	}

	var out []statusRow
	for _, s := range presence.All() {
		if counts[s] == 0 {
			continue
		}
		out = append(out, statusRow{
			Label: presence.LabelOf(s),
			Color: presence.ColorOf(s),
			Count: counts[s],
		})
	}
	return out
}
