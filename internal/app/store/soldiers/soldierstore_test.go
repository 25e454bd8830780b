package soldierstore_test

import (
	"errors"
	"testing"
	"time"

	soldierstore "github.com/unitops/rollcall/internal/app/store/soldiers"
	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"github.com/unitops/rollcall/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func soldierFor(frameworkID primitive.ObjectID, name string) models.Soldier {
	return models.Soldier{
		Name:           name,
		PersonalNumber: primitive.NewObjectID().Hex()[:8],
		FrameworkID:    frameworkID,
	}
}

func TestStore_CreateDefaultsToAtBase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := soldierstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fw := fixtures.CreateFramework(ctx, "Platoon 1", "platoon", nil)

	created, err := store.Create(ctx, soldierFor(fw.ID, "Dan Peretz"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Presence != string(presence.AtBase) {
		t.Errorf("new soldier presence = %q, want at_base", created.Presence)
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
}

func TestStore_SetPresenceRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := soldierstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fw := fixtures.CreateFramework(ctx, "Platoon 1", "platoon", nil)
	sol := fixtures.CreateSoldier(ctx, "Dan Peretz", fw.ID)

	until := time.Now().UTC().Add(14 * 24 * time.Hour).Truncate(time.Millisecond)
	if err := store.SetPresence(ctx, sol.ID, presence.Course, "NCO course", &until); err != nil {
		t.Fatalf("SetPresence(course) failed: %v", err)
	}

	got, err := store.GetByID(ctx, sol.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Presence != string(presence.Course) {
		t.Errorf("presence = %q, want course", got.Presence)
	}
	if got.PresenceDetail != "NCO course" {
		t.Errorf("presence_detail = %q, want %q", got.PresenceDetail, "NCO course")
	}
	if got.AbsenceUntil == nil || !got.AbsenceUntil.Equal(until) {
		t.Errorf("absence_until = %v, want %v", got.AbsenceUntil, until)
	}

	// Back to at-base: both companions must be cleared, not left stale.
	if err := store.SetPresence(ctx, sol.ID, presence.AtBase, "", nil); err != nil {
		t.Fatalf("SetPresence(at_base) failed: %v", err)
	}
	got, err = store.GetByID(ctx, sol.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Presence != string(presence.AtBase) {
		t.Errorf("presence = %q, want at_base", got.Presence)
	}
	if got.PresenceDetail != "" {
		t.Errorf("presence_detail = %q, want cleared", got.PresenceDetail)
	}
	if got.AbsenceUntil != nil {
		t.Errorf("absence_until = %v, want cleared", got.AbsenceUntil)
	}
}

func TestStore_SetPresenceValidation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := soldierstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fw := fixtures.CreateFramework(ctx, "Platoon 1", "platoon", nil)
	sol := fixtures.CreateSoldier(ctx, "Dan Peretz", fw.ID)
	until := time.Now().UTC().Add(24 * time.Hour)

	if err := store.SetPresence(ctx, sol.ID, presence.Leave, "", nil); !errors.Is(err, soldierstore.ErrAbsenceDateRequired) {
		t.Errorf("leave without date: err = %v, want ErrAbsenceDateRequired", err)
	}
	if err := store.SetPresence(ctx, sol.ID, presence.Other, "", nil); !errors.Is(err, soldierstore.ErrDetailRequired) {
		t.Errorf("other without text: err = %v, want ErrDetailRequired", err)
	}
	if err := store.SetPresence(ctx, sol.ID, presence.Status("bogus"), "", nil); !errors.Is(err, soldierstore.ErrUnknownStatus) {
		t.Errorf("bogus status: err = %v, want ErrUnknownStatus", err)
	}
	if err := store.SetPresence(ctx, primitive.NewObjectID(), presence.Leave, "", &until); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Errorf("missing soldier: err = %v, want ErrNoDocuments", err)
	}
}

func TestStore_SetPresenceSanitizesDetail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := soldierstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fw := fixtures.CreateFramework(ctx, "Platoon 1", "platoon", nil)
	sol := fixtures.CreateSoldier(ctx, "Dan Peretz", fw.ID)

	if err := store.SetPresence(ctx, sol.ID, presence.Other, `<script>x</script>liaison office`, nil); err != nil {
		t.Fatalf("SetPresence failed: %v", err)
	}
	got, err := store.GetByID(ctx, sol.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.PresenceDetail != "liaison office" {
		t.Errorf("presence_detail = %q, want markup stripped", got.PresenceDetail)
	}
}

func TestStore_ListByFrameworkIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := soldierstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	platoon := fixtures.CreateFramework(ctx, "Platoon 1", "platoon", nil)
	squad := fixtures.CreateFramework(ctx, "Squad 1", "squad", &platoon.ID)
	other := fixtures.CreateFramework(ctx, "Platoon 2", "platoon", nil)

	fixtures.CreateSoldier(ctx, "Alef", platoon.ID)
	fixtures.CreateSoldier(ctx, "Bet", squad.ID)
	fixtures.CreateSoldier(ctx, "Gimel", other.ID)

	got, err := store.ListByFrameworkIDs(ctx, []primitive.ObjectID{platoon.ID, squad.ID})
	if err != nil {
		t.Fatalf("ListByFrameworkIDs failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListByFrameworkIDs returned %d soldiers, want 2", len(got))
	}

	empty, err := store.ListByFrameworkIDs(ctx, nil)
	if err != nil {
		t.Fatalf("ListByFrameworkIDs(nil) failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("ListByFrameworkIDs(nil) returned %d soldiers, want 0", len(empty))
	}
}
