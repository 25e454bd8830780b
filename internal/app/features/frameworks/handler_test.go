package frameworks

import (
	"testing"
	"time"

	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fw(id primitive.ObjectID, name string, parent *primitive.ObjectID) models.Framework {
	return models.Framework{ID: id, Name: name, Kind: models.FrameworkOther, ParentID: parent}
}

func TestBuildRowsCountsSubtrees(t *testing.T) {
	company := primitive.NewObjectID()
	platoon := primitive.NewObjectID()
	squad := primitive.NewObjectID()

	fws := []models.Framework{
		fw(company, "Company A", nil),
		fw(platoon, "Platoon 1", &company),
		fw(squad, "Squad 1", &platoon),
	}

	sols := []models.Soldier{
		{FrameworkID: company, Presence: string(presence.AtBase)},
		{FrameworkID: platoon, Presence: string(presence.Leave)},
		{FrameworkID: squad, Presence: string(presence.AtBase)},
	}

	visible := []primitive.ObjectID{company, platoon, squad}
	rows := buildRows(fws, visible, sols)
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(rows))
	}

	byName := make(map[string]listRow)
	for _, row := range rows {
		byName[row.Name] = row
	}

	if got := byName["Company A"]; got.SoldierCount != 3 || got.Availability != "2/3" {
		t.Errorf("company: got count=%d avail=%q, want 3 and 2/3", got.SoldierCount, got.Availability)
	}
	// Leave does not map back to at_base for the report either.
	if got := byName["Company A"]; got.Present != "2/3" {
		t.Errorf("company present: got %q, want 2/3", got.Present)
	}
	if got := byName["Platoon 1"]; got.SoldierCount != 2 || got.Availability != "1/2" {
		t.Errorf("platoon: got count=%d avail=%q, want 2 and 1/2", got.SoldierCount, got.Availability)
	}
	if got := byName["Squad 1"]; got.SoldierCount != 1 || got.Availability != "1/1" {
		t.Errorf("squad: got count=%d avail=%q, want 1 and 1/1", got.SoldierCount, got.Availability)
	}
}

func TestBuildRowsSkipsUnknownVisibleIDs(t *testing.T) {
	company := primitive.NewObjectID()
	rows := buildRows(
		[]models.Framework{fw(company, "Company A", nil)},
		[]primitive.ObjectID{company, primitive.NewObjectID()},
		nil,
	)
	if len(rows) != 1 {
		t.Fatalf("rows: got %d, want 1", len(rows))
	}
	if rows[0].Availability != "0/0" {
		t.Errorf("empty framework availability: got %q, want 0/0", rows[0].Availability)
	}
}

func TestSoldierViewRowLapsedAbsence(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	lapsed := now.Add(-24 * time.Hour)

	row := soldierViewRow(models.Soldier{
		ID:             primitive.NewObjectID(),
		Name:           "Dana",
		Presence:       string(presence.Leave),
		PresenceDetail: "family event",
		AbsenceUntil:   &lapsed,
	}, now)

	if row.StatusLabel != presence.LabelOf(presence.AtBase) {
		t.Errorf("label: got %q, want the at-base label", row.StatusLabel)
	}
	// Companion fields of the lapsed absence must not leak into the row.
	if row.Detail != "" || row.Until != "" {
		t.Errorf("lapsed absence leaked detail=%q until=%q", row.Detail, row.Until)
	}
}
