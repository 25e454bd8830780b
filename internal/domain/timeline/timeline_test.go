package timeline

import (
	"testing"
	"time"

	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	day = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
)

func soldier() models.Soldier {
	return models.Soldier{ID: primitive.NewObjectID(), Name: "Dan Peretz"}
}

func TestBuildActivity(t *testing.T) {
	s := soldier()
	act := models.Activity{
		ID:             primitive.NewObjectID(),
		Name:           "Night patrol",
		PlannedDate:    day,
		PlannedTime:    "21:30",
		DurationHours:  2.5,
		ParticipantIDs: []primitive.ObjectID{s.ID},
	}

	items := Build(s, []models.Activity{act}, nil, nil, nil, now)
	if len(items) != 1 {
		t.Fatalf("Build returned %d items, want 1", len(items))
	}
	it := items[0]
	if it.Kind != KindActivity || it.Status != presence.OnActivity {
		t.Errorf("item kind/status = %q/%q", it.Kind, it.Status)
	}
	wantStart := time.Date(2026, 3, 16, 21, 30, 0, 0, time.UTC)
	if !it.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", it.Start, wantStart)
	}
	if got := it.End.Sub(it.Start); got != 150*time.Minute {
		t.Errorf("duration = %v, want 2h30m", got)
	}
}

func TestBuildSkipsMalformedActivityKeepsOthers(t *testing.T) {
	s := soldier()
	bad := models.Activity{
		ID:             primitive.NewObjectID(),
		Name:           "No time set",
		PlannedDate:    day,
		DurationHours:  2,
		ParticipantIDs: []primitive.ObjectID{s.ID},
	}
	duty := models.Duty{
		ID:             primitive.NewObjectID(),
		Name:           "Gate guard",
		StartDate:      day,
		StartTime:      "08:00",
		EndTime:        "12:00",
		ParticipantIDs: []primitive.ObjectID{s.ID},
	}

	items := Build(s, []models.Activity{bad}, []models.Duty{duty}, nil, nil, now)
	if len(items) != 1 {
		t.Fatalf("Build returned %d items, want 1 (duty only): %+v", len(items), items)
	}
	if items[0].Kind != KindDuty {
		t.Errorf("surviving item kind = %q, want duty", items[0].Kind)
	}
}

func TestBuildDutyAcrossMidnight(t *testing.T) {
	s := soldier()
	duty := models.Duty{
		ID:             primitive.NewObjectID(),
		Name:           "Night guard",
		StartDate:      day,
		StartTime:      "22:00",
		EndTime:        "02:00",
		ParticipantIDs: []primitive.ObjectID{s.ID},
	}
	items := Build(s, nil, []models.Duty{duty}, nil, nil, now)
	if len(items) != 1 {
		t.Fatalf("Build returned %d items, want 1", len(items))
	}
	if got := items[0].End.Sub(items[0].Start); got != 4*time.Hour {
		t.Errorf("midnight-crossing duty duration = %v, want 4h", got)
	}
}

func TestBuildReferralAndTrip(t *testing.T) {
	s := soldier()
	ref := models.Referral{
		ID:            primitive.NewObjectID(),
		SoldierID:     s.ID,
		Reason:        "Dental appointment",
		Date:          day,
		DepartureTime: "09:00",
		ReturnTime:    "11:00",
	}
	ret := day.Add(15 * time.Hour)
	trip := models.Trip{
		ID:          primitive.NewObjectID(),
		Purpose:     "Supply run",
		DriverID:    s.ID,
		DepartureAt: day.Add(13 * time.Hour),
		ReturnAt:    &ret,
		Status:      models.TripPlanned,
	}

	items := Build(s, nil, nil, []models.Referral{ref}, []models.Trip{trip}, now)
	if len(items) != 2 {
		t.Fatalf("Build returned %d items, want 2", len(items))
	}
	// Sorted by start: referral at 09:00 before trip at 13:00.
	if items[0].Kind != KindReferral || items[1].Kind != KindTrip {
		t.Errorf("item order = %q, %q; want referral, trip", items[0].Kind, items[1].Kind)
	}
}

func TestBuildAbsenceWindow(t *testing.T) {
	until := now.Add(48 * time.Hour)
	s := soldier()
	s.Presence = string(presence.Leave)
	s.AbsenceUntil = &until

	items := Build(s, nil, nil, nil, nil, now)
	if len(items) != 1 {
		t.Fatalf("Build returned %d items, want 1", len(items))
	}
	it := items[0]
	if it.Kind != KindAbsence || it.Status != presence.Leave {
		t.Errorf("item kind/status = %q/%q", it.Kind, it.Status)
	}
	if !it.Start.Equal(now) || !it.End.Equal(until) {
		t.Errorf("absence window = [%v, %v], want [now, until]", it.Start, it.End)
	}
}

func TestBuildExpiredAbsenceProducesNothing(t *testing.T) {
	until := now.Add(-time.Hour)
	s := soldier()
	s.Presence = string(presence.Leave)
	s.AbsenceUntil = &until

	if items := Build(s, nil, nil, nil, nil, now); len(items) != 0 {
		t.Errorf("expired absence produced %d items, want 0", len(items))
	}
}

func TestBuildExplicitRestWindow(t *testing.T) {
	restUntil := now.Add(3 * time.Hour)
	s := soldier()
	s.Qualifications = []string{models.QualificationDriver}
	s.RestUntil = &restUntil

	items := Build(s, nil, nil, nil, nil, now)
	if len(items) != 1 {
		t.Fatalf("Build returned %d items, want 1", len(items))
	}
	it := items[0]
	if it.Kind != KindRest {
		t.Fatalf("item kind = %q, want rest", it.Kind)
	}
	if !it.End.Equal(restUntil) || !it.Start.Equal(restUntil.Add(-RestWindow)) {
		t.Errorf("rest window = [%v, %v], want restUntil-7h..restUntil", it.Start, it.End)
	}
}

func TestBuildInferredRestFromLastTrip(t *testing.T) {
	s := soldier()
	s.Qualifications = []string{models.QualificationDriver}

	early := now.Add(-10 * time.Hour)
	late := now.Add(-2 * time.Hour)
	trips := []models.Trip{
		{ID: primitive.NewObjectID(), DriverID: s.ID, DepartureAt: early.Add(-2 * time.Hour), ReturnAt: &early, Status: models.TripCompleted},
		{ID: primitive.NewObjectID(), DriverID: s.ID, DepartureAt: late.Add(-time.Hour), ReturnAt: &late, Status: models.TripCompleted},
	}

	items := Build(s, nil, nil, nil, trips, now)
	var rest *Item
	for i := range items {
		if items[i].Kind == KindRest {
			rest = &items[i]
		}
	}
	if rest == nil {
		t.Fatalf("no rest item in %+v", items)
	}
	if !rest.Start.Equal(late) || !rest.End.Equal(late.Add(RestWindow)) {
		t.Errorf("rest window = [%v, %v], want return..return+7h of latest trip", rest.Start, rest.End)
	}
}

func TestBuildNonDriverGetsNoRest(t *testing.T) {
	s := soldier()
	ret := now.Add(-time.Hour)
	trips := []models.Trip{
		{ID: primitive.NewObjectID(), DriverID: s.ID, DepartureAt: ret.Add(-time.Hour), ReturnAt: &ret, Status: models.TripCompleted},
	}
	items := Build(s, nil, nil, nil, trips, now)
	for _, it := range items {
		if it.Kind == KindRest {
			t.Error("non-driver soldier received a rest item")
		}
	}
}

func TestIsRangeAvailable(t *testing.T) {
	base := day.Add(10 * time.Hour) // 10:00
	existing := []Item{{
		Start: day.Add(11 * time.Hour), // 11:00
		End:   day.Add(12 * time.Hour), // 12:00
	}}

	// Adjacent [10:00, 11:00) does not collide with [11:00, 12:00).
	if !IsRangeAvailable(existing, base, day.Add(11*time.Hour)) {
		t.Error("adjacent range reported as conflicting")
	}
	// Overlapping [10:30, 11:30) does.
	if IsRangeAvailable(existing, day.Add(10*time.Hour+30*time.Minute), day.Add(11*time.Hour+30*time.Minute)) {
		t.Error("overlapping range reported as available")
	}
	// Empty item set never conflicts.
	if !IsRangeAvailable(nil, base, base.Add(time.Hour)) {
		t.Error("empty item set reported as conflicting")
	}
}
