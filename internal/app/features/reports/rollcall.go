// internal/app/features/reports/rollcall.go
package reports

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/unitops/rollcall/internal/app/features/errors"
	"github.com/unitops/rollcall/internal/app/policy/scopepolicy"
	"github.com/unitops/rollcall/internal/app/system/authz"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// reportEntry is one soldier line inside a bucket.
type reportEntry struct {
	Name      string
	Framework string
	Detail    string
}

// reportBucket groups soldiers whose stored status maps to the same
// report category.
type reportBucket struct {
	Status  presence.Status
	Label   string
	Count   int
	Entries []reportEntry
}

type reportData struct {
	viewdata.BaseVM
	Total   int
	Present string // "m/n"
	Buckets []reportBucket
}

// ServeRollCall handles GET /reports: the roll-call report. Every scoped
// soldier is mapped through the report mapping, so transient away
// statuses (activity, trip, duty, referral, rest) count as present.
func (h *Handler) ServeRollCall(w http.ResponseWriter, r *http.Request) {
	sols, fws, err := h.scopedSoldiers(r)
	if err != nil {
		h.Log.Error("reports: load", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not build the report.", "/dashboard")
		return
	}

	data := reportData{
		BaseVM:  viewdata.NewBaseVM(r, "Roll call", "/dashboard"),
		Total:   len(sols),
		Present: presence.Present(sols),
		Buckets: buildBuckets(sols, fws),
	}
	templates.Render(w, r, "report_rollcall", data)
}

// scopedSoldiers loads the soldiers the operator may report on, plus the
// framework tree for name resolution.
func (h *Handler) scopedSoldiers(r *http.Request) ([]models.Soldier, []models.Framework, error) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list frameworks: %w", err)
	}
	visible := scopepolicy.VisibleFrameworkIDs(authz.UserScope(r), authz.UserHomeFramework(r), fws)
	sols, err := h.Soldiers.ListByFrameworkIDs(ctx, visible)
	if err != nil {
		return nil, nil, fmt.Errorf("list soldiers: %w", err)
	}
	return sols, fws, nil
}

// reportOrder is the bucket order of the roll-call report: present first,
// then the long-absence categories.
var reportOrder = []presence.Status{
	presence.AtBase,
	presence.Course,
	presence.ReserveDuty,
	presence.Leave,
}

// buildBuckets groups soldiers by their report-mapped stored status.
func buildBuckets(sols []models.Soldier, fws []models.Framework) []reportBucket {
	fwName := make(map[primitive.ObjectID]string, len(fws))
	for i := range fws {
		fwName[fws[i].ID] = fws[i].Name
	}

	grouped := make(map[presence.Status][]reportEntry)
	for i := range sols {
		s := &sols[i]
		mapped := presence.MapForReport(presence.Status(s.Presence))
		grouped[mapped] = append(grouped[mapped], reportEntry{
			Name:      s.Name,
			Framework: fwName[s.FrameworkID],
			Detail:    s.PresenceDetail,
		})
	}

	buckets := make([]reportBucket, 0, len(reportOrder))
	for _, status := range reportOrder {
		entries := grouped[status]
		label := presence.LabelOf(status)
		if status == presence.AtBase {
			label = "נוכחים" // the report counts every mapped-to-base status as present
		}
		buckets = append(buckets, reportBucket{
			Status:  status,
			Label:   label,
			Count:   len(entries),
			Entries: entries,
		})
	}
	return buckets
}
