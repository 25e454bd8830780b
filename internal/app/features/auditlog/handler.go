// internal/app/features/auditlog/handler.go
package auditlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/unitops/rollcall/internal/app/features/errors"
	auditstore "github.com/unitops/rollcall/internal/app/store/audit"
	soldierstore "github.com/unitops/rollcall/internal/app/store/soldiers"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const recentLimit = 100

// Handler serves the audit log page.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	Audit    *auditstore.Store
	Soldiers *soldierstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		Audit:    auditstore.New(db),
		Soldiers: soldierstore.New(db),
	}
}

type eventRow struct {
	At          string
	UserName    string
	Action      string
	SoldierID   string
	SoldierName string
	Detail      string
}

type pageData struct {
	viewdata.BaseVM
	Events []eventRow
}

// Serve handles GET /audit. Routes restrict this to admins.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	events, err := h.Audit.ListRecent(ctx, recentLimit)
	if err != nil {
		h.Log.Error("auditlog: list", zap.Error(err))
		errors.RenderForbidden(w, r, "Could not load the audit log.", "/dashboard")
		return
	}

	// Resolve soldier names once per distinct id.
	names := make(map[primitive.ObjectID]string)
	for _, e := range events {
		if _, ok := names[e.SoldierID]; ok {
			continue
		}
		s, err := h.Soldiers.GetByID(ctx, e.SoldierID)
		if err != nil {
			names[e.SoldierID] = ""
			continue
		}
		names[e.SoldierID] = s.Name
	}

	data := pageData{BaseVM: viewdata.NewBaseVM(r, "Audit log", "/dashboard")}
	for _, e := range events {
		data.Events = append(data.Events, eventRow{
			At:          e.At.Format("02/01/2006 15:04"),
			UserName:    e.UserName,
			Action:      e.Action,
			SoldierID:   e.SoldierID.Hex(),
			SoldierName: names[e.SoldierID],
			Detail:      e.Detail,
		})
	}

	templates.Render(w, r, "auditlog", data)
}
