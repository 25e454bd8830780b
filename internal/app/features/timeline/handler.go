// internal/app/features/timeline/handler.go
package timeline

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/unitops/rollcall/internal/app/policy/scopepolicy"
	activitystore "github.com/unitops/rollcall/internal/app/store/activities"
	dutystore "github.com/unitops/rollcall/internal/app/store/duties"
	frameworkstore "github.com/unitops/rollcall/internal/app/store/frameworks"
	referralstore "github.com/unitops/rollcall/internal/app/store/referrals"
	soldierstore "github.com/unitops/rollcall/internal/app/store/soldiers"
	tripstore "github.com/unitops/rollcall/internal/app/store/trips"
	"github.com/unitops/rollcall/internal/app/system/authz"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	domaintimeline "github.com/unitops/rollcall/internal/domain/timeline"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the per-soldier timeline as JSON for the client chart.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Soldiers   *soldierstore.Store
	Frameworks *frameworkstore.Store
	Activities *activitystore.Store
	Duties     *dutystore.Store
	Referrals  *referralstore.Store
	Trips      *tripstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Soldiers:   soldierstore.New(db),
		Frameworks: frameworkstore.New(db),
		Activities: activitystore.New(db),
		Duties:     dutystore.New(db),
		Referrals:  referralstore.New(db),
		Trips:      tripstore.New(db),
	}
}

// ServeItems handles GET /timeline/{id}: the soldier's schedule items.
func (h *Handler) ServeItems(w http.ResponseWriter, r *http.Request) {
	items, ok := h.loadItems(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Items []domaintimeline.Item `json:"items"`
	}{Items: items})
}

// ServeAvailability handles GET /timeline/{id}/availability?start=&end=.
// It answers whether the [start, end) range is free of schedule items,
// as a pre-check before assigning the soldier to something new.
func (h *Handler) ServeAvailability(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "invalid start", http.StatusBadRequest)
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		http.Error(w, "invalid end", http.StatusBadRequest)
		return
	}
	if !end.After(start) {
		http.Error(w, "end must be after start", http.StatusBadRequest)
		return
	}

	items, ok := h.loadItems(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(struct {
		Available bool `json:"available"`
	}{Available: domaintimeline.IsRangeAvailable(items, start, end)})
}

// loadItems resolves the soldier, applies the scope policy, and builds
// the timeline. On failure it writes the HTTP error itself.
func (h *Handler) loadItems(w http.ResponseWriter, r *http.Request) ([]domaintimeline.Item, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "unknown soldier", http.StatusNotFound)
		return nil, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	s, err := h.Soldiers.GetByID(ctx, id)
	if err != nil {
		http.Error(w, "unknown soldier", http.StatusNotFound)
		return nil, false
	}

	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		h.Log.Error("timeline: list frameworks", zap.Error(err))
		http.Error(w, "could not build the timeline", http.StatusInternalServerError)
		return nil, false
	}
	if !scopepolicy.CanAccessFramework(authz.UserScope(r), authz.UserHomeFramework(r), fws, s.FrameworkID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return nil, false
	}

	activities, err := h.Activities.ListByParticipant(ctx, id)
	if err != nil {
		h.Log.Error("timeline: list activities", zap.Error(err))
		http.Error(w, "could not build the timeline", http.StatusInternalServerError)
		return nil, false
	}
	duties, err := h.Duties.ListByParticipant(ctx, id)
	if err != nil {
		h.Log.Error("timeline: list duties", zap.Error(err))
		http.Error(w, "could not build the timeline", http.StatusInternalServerError)
		return nil, false
	}
	referrals, err := h.Referrals.ListBySoldier(ctx, id)
	if err != nil {
		h.Log.Error("timeline: list referrals", zap.Error(err))
		http.Error(w, "could not build the timeline", http.StatusInternalServerError)
		return nil, false
	}
	trips, err := h.Trips.ListByDriver(ctx, id)
	if err != nil {
		h.Log.Error("timeline: list trips", zap.Error(err))
		http.Error(w, "could not build the timeline", http.StatusInternalServerError)
		return nil, false
	}

	return domaintimeline.Build(s, activities, duties, referrals, trips, time.Now().UTC()), true
}
