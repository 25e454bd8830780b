// internal/app/features/reports/rollcallcsv.go
package reports

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	uierrors "github.com/unitops/rollcall/internal/app/features/errors"
	"github.com/unitops/rollcall/internal/app/system/authz"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.uber.org/zap"
)

// ServeRollCallCSV handles GET /reports/rollcall.csv and streams the
// roll-call report as a CSV: one row per soldier with the stored status,
// its report category, and the companion fields.
func (h *Handler) ServeRollCallCSV(w http.ResponseWriter, r *http.Request) {
	if _, _, _, ok := authz.UserCtx(r); !ok {
		uierrors.RenderUnauthorized(w, r, "/login")
		return
	}

	sols, fws, err := h.scopedSoldiers(r)
	if err != nil {
		h.Log.Error("reports: csv load", zap.Error(err))
		http.Error(w, "could not build the report", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("rollcall_%s_%s.csv",
		time.Now().UTC().Format("20060102"), uuid.NewString()[:8])

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM so Excel treats the Hebrew labels as Unicode.
	_, _ = w.Write([]byte{0xEF, 0xBB, 0xBF})

	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	defer cw.Flush()

	_ = cw.Write([]string{"name", "personal_number", "framework", "status", "report_category", "detail", "until"})

	fwName := make(map[string]string, len(fws))
	for i := range fws {
		fwName[fws[i].ID.Hex()] = fws[i].Name
	}

	for i := range sols {
		s := &sols[i]
		status := presence.Status(s.Presence)
		until := ""
		if s.AbsenceUntil != nil {
			until = s.AbsenceUntil.Format("2006-01-02")
		}
		_ = cw.Write([]string{
			s.Name,
			s.PersonalNumber,
			fwName[s.FrameworkID.Hex()],
			presence.LabelOf(status),
			presence.LabelOf(presence.MapForReport(status)),
			s.PresenceDetail,
			until,
		})
	}
}
