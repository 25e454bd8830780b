package dashboard

import (
	"testing"
	"time"

	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
)

func TestBreakdownUsesEffectiveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	lapsed := now.Add(-48 * time.Hour)
	active := now.Add(48 * time.Hour)

	sols := []models.Soldier{
		{Presence: string(presence.AtBase)},
		{Presence: string(presence.AtBase)},
		{Presence: string(presence.Leave), AbsenceUntil: &active},
		// Lapsed leave counts as at base again.
		{Presence: string(presence.Leave), AbsenceUntil: &lapsed},
	}

	rows := breakdown(sols, now)
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}

	// Catalog order puts at_base first.
	if rows[0].Label != presence.LabelOf(presence.AtBase) || rows[0].Count != 3 {
		t.Errorf("row 0: got %q=%d, want %q=3", rows[0].Label, rows[0].Count, presence.LabelOf(presence.AtBase))
	}
	if rows[1].Label != presence.LabelOf(presence.Leave) || rows[1].Count != 1 {
		t.Errorf("row 1: got %q=%d, want %q=1", rows[1].Label, rows[1].Count, presence.LabelOf(presence.Leave))
	}
}

func TestBreakdownSkipsZeroStatuses(t *testing.T) {
	rows := breakdown(nil, time.Now().UTC())
	if len(rows) != 0 {
		t.Fatalf("rows for no soldiers: got %d, want 0", len(rows))
	}
}
