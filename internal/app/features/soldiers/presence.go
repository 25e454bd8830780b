// internal/app/features/soldiers/presence.go
package soldiers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/go-chi/chi/v5"
	uierrors "github.com/unitops/rollcall/internal/app/features/errors"
	"github.com/unitops/rollcall/internal/app/policy/presencepolicy"
	soldierstore "github.com/unitops/rollcall/internal/app/store/soldiers"
	"github.com/unitops/rollcall/internal/app/system/authz"
	"github.com/unitops/rollcall/internal/app/system/timeouts"
	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandlePresencePost processes POST /soldiers/{id}/presence.
//
// This is the only handler that changes a soldier's status. It checks the
// operator's edit policy against the soldier's framework, delegates the
// requirement validation to the store, and records an audit event.
func (h *Handler) HandlePresencePost(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}
	if err := r.ParseForm(); err != nil {
		uierrors.RenderForbidden(w, r, "Invalid form submission.", "/soldiers/"+id.Hex())
		return
	}

	status := presence.Status(strings.TrimSpace(r.FormValue("status")))
	detail := strings.TrimSpace(r.FormValue("detail"))
	untilRaw := strings.TrimSpace(r.FormValue("until"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	s, err := h.Soldiers.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}

	if !h.canEdit(ctx, r, s.FrameworkID) {
		uierrors.RenderForbidden(w, r, "You may not change this soldier's status.", "/soldiers/"+id.Hex())
		return
	}

	var until *time.Time
	if untilRaw != "" {
		// The form sends a date; the absence runs through the end of it.
		day, perr := time.ParseInLocation("2006-01-02", untilRaw, time.UTC)
		if perr != nil {
			uierrors.RenderForbidden(w, r, "Invalid return date.", "/soldiers/"+id.Hex())
			return
		}
		end := day.Add(24*time.Hour - time.Second)
		until = &end
	}

	err = h.Soldiers.SetPresence(ctx, id, status, detail, until)
	switch {
	case errors.Is(err, soldierstore.ErrUnknownStatus):
		uierrors.RenderForbidden(w, r, "Unknown status.", "/soldiers/"+id.Hex())
		return
	case errors.Is(err, soldierstore.ErrAbsenceDateRequired):
		uierrors.RenderForbidden(w, r, "This status requires a return date.", "/soldiers/"+id.Hex())
		return
	case errors.Is(err, soldierstore.ErrDetailRequired):
		uierrors.RenderForbidden(w, r, "This status requires a description.", "/soldiers/"+id.Hex())
		return
	case errors.Is(err, mongo.ErrNoDocuments):
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	case err != nil:
		h.Log.Error("soldiers: set presence", zap.Error(err))
		uierrors.RenderForbidden(w, r, "Could not update the status.", "/soldiers/"+id.Hex())
		return
	}

	h.recordAudit(ctx, r, id, models.AuditPresenceChange, presenceAuditDetail(s, status, untilRaw))

	http.Redirect(w, r, httpnav.ResolveBackURL(r, "/soldiers/"+id.Hex()), http.StatusSeeOther)
}

// HandleRestPost processes POST /soldiers/{id}/rest: sets or clears a
// driver's explicit rest window.
func (h *Handler) HandleRestPost(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}
	if err := r.ParseForm(); err != nil {
		uierrors.RenderForbidden(w, r, "Invalid form submission.", "/soldiers/"+id.Hex())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	s, err := h.Soldiers.GetByID(ctx, id)
	if err != nil {
		uierrors.RenderForbidden(w, r, "Unknown soldier.", "/soldiers")
		return
	}
	if !s.IsDriver() {
		uierrors.RenderForbidden(w, r, "Rest windows apply to drivers only.", "/soldiers/"+id.Hex())
		return
	}
	if !h.canEdit(ctx, r, s.FrameworkID) {
		uierrors.RenderForbidden(w, r, "You may not change this soldier's rest window.", "/soldiers/"+id.Hex())
		return
	}

	var until *time.Time
	detail := "rest window cleared"
	if raw := strings.TrimSpace(r.FormValue("rest_until")); raw != "" {
		// datetime-local input, no zone; stored as UTC.
		at, perr := time.ParseInLocation("2006-01-02T15:04", raw, time.UTC)
		if perr != nil {
			uierrors.RenderForbidden(w, r, "Invalid rest end time.", "/soldiers/"+id.Hex())
			return
		}
		until = &at
		detail = "rest until " + at.Format("02/01/2006 15:04")
	}

	if err := h.Soldiers.SetRest(ctx, id, until); err != nil {
		h.Log.Error("soldiers: set rest", zap.Error(err))
		uierrors.RenderForbidden(w, r, "Could not update the rest window.", "/soldiers/"+id.Hex())
		return
	}

	h.recordAudit(ctx, r, id, models.AuditRestChange, detail)

	http.Redirect(w, r, "/soldiers/"+id.Hex(), http.StatusSeeOther)
}

// canEdit loads the framework tree and applies the presence edit policy.
func (h *Handler) canEdit(ctx context.Context, r *http.Request, frameworkID primitive.ObjectID) bool {
	fws, err := h.Frameworks.ListAll(ctx)
	if err != nil {
		h.Log.Error("soldiers: list frameworks", zap.Error(err))
		return false
	}
	role, _, _, ok := authz.UserCtx(r)
	if !ok {
		return false
	}
	return presencepolicy.CanEditPresence(role, authz.UserScope(r), authz.UserHomeFramework(r), fws, frameworkID)
}

func (h *Handler) recordAudit(ctx context.Context, r *http.Request, soldierID primitive.ObjectID, action, detail string) {
	_, name, userID, ok := authz.UserCtx(r)
	if !ok {
		return
	}
	e := models.AuditEvent{
		UserID:    userID,
		UserName:  name,
		Action:    action,
		SoldierID: soldierID,
		Detail:    detail,
	}
	// Audit failures must not fail the user's action.
	if err := h.Audit.Insert(ctx, e); err != nil {
		h.Log.Error("soldiers: audit insert", zap.Error(err))
	}
}

func presenceAuditDetail(before models.Soldier, status presence.Status, until string) string {
	from := before.Presence
	if from == "" {
		from = string(presence.AtBase)
	}
	to := string(status)
	if until != "" {
		to = fmt.Sprintf("%s until %s", to, until)
	}
	return from + " -> " + to
}
