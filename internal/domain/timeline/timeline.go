// internal/domain/timeline/timeline.go

// Package timeline builds the per-soldier horizontal timeline: one
// time-boxed item per activity, duty, referral, and trip the soldier takes
// part in, plus absence and driver-rest windows, normalized for rendering
// and conflict checks.
//
// Source records come from a loosely typed document store and routinely
// miss date or time fields; an item that cannot resolve to a valid
// [start, end] range is skipped silently, never emitted with an invalid
// range. Items are never persisted; callers rebuild them on every pass.
package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Item kinds.
const (
	KindActivity = "activity"
	KindDuty     = "duty"
	KindReferral = "referral"
	KindTrip     = "trip"
	KindAbsence  = "absence"
	KindRest     = "rest"
)

// RestWindow is the mandatory driver rest period after a trip.
const RestWindow = 7 * time.Hour

// Item is one time-boxed occurrence on a soldier's timeline.
// Start <= End always holds for items returned by Build.
type Item struct {
	ID        string             `json:"id"`
	Title     string             `json:"title"`
	Start     time.Time          `json:"start"`
	End       time.Time          `json:"end"`
	Kind      string             `json:"kind"`
	SoldierID primitive.ObjectID `json:"soldier_id"`
	Status    presence.Status    `json:"status"`
}

// Build assembles the soldier's timeline items from the full activity,
// duty, referral, and trip collections, using now for absence and
// inferred-rest windows. The result is sorted by start time.
func Build(s models.Soldier, activities []models.Activity, duties []models.Duty, referrals []models.Referral, trips []models.Trip, now time.Time) []Item {
	var items []Item

	for i := range activities {
		if it, ok := activityItem(s, &activities[i]); ok {
			items = append(items, it)
		}
	}
	for i := range duties {
		if it, ok := dutyItem(s, &duties[i]); ok {
			items = append(items, it)
		}
	}
	for i := range referrals {
		if it, ok := referralItem(s, &referrals[i]); ok {
			items = append(items, it)
		}
	}
	for i := range trips {
		if it, ok := tripItem(s, &trips[i]); ok {
			items = append(items, it)
		}
	}
	if it, ok := absenceItem(s, now); ok {
		items = append(items, it)
	}
	if it, ok := restItem(s, trips, now); ok {
		items = append(items, it)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start.Before(items[j].Start)
	})
	return items
}

// IsRangeAvailable reports whether [start, end) intersects none of the
// existing items. Intervals are half-open so back-to-back items do not
// collide.
func IsRangeAvailable(items []Item, start, end time.Time) bool {
	for i := range items {
		if items[i].Start.Before(end) && start.Before(items[i].End) {
			return false
		}
	}
	return true
}

func participates(ids []primitive.ObjectID, soldier primitive.ObjectID) bool {
	for _, id := range ids {
		if id == soldier {
			return true
		}
	}
	return false
}

// at resolves a calendar day plus an "HH:MM" clock string to an instant in
// the day's location. Returns false for a zero day or malformed time.
func at(day time.Time, hhmm string) (time.Time, bool) {
	if day.IsZero() {
		return time.Time{}, false
	}
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location()), true
}

func valid(start, end time.Time) bool {
	return !start.IsZero() && !end.IsZero() && !end.Before(start)
}

func activityItem(s models.Soldier, a *models.Activity) (Item, bool) {
	if !participates(a.ParticipantIDs, s.ID) || a.DurationHours <= 0 {
		return Item{}, false
	}
	start, ok := at(a.PlannedDate, a.PlannedTime)
	if !ok {
		return Item{}, false
	}
	end := start.Add(time.Duration(a.DurationHours * float64(time.Hour)))
	if !valid(start, end) {
		return Item{}, false
	}
	return Item{
		ID:        fmt.Sprintf("activity-%s-%s", a.ID.Hex(), s.ID.Hex()),
		Title:     a.Name,
		Start:     start,
		End:       end,
		Kind:      KindActivity,
		SoldierID: s.ID,
		Status:    presence.OnActivity,
	}, true
}

func dutyItem(s models.Soldier, d *models.Duty) (Item, bool) {
	if !participates(d.ParticipantIDs, s.ID) {
		return Item{}, false
	}
	start, ok := at(d.StartDate, d.StartTime)
	if !ok {
		return Item{}, false
	}
	end, ok := at(d.StartDate, d.EndTime)
	if !ok {
		return Item{}, false
	}
	// An end at or before the start means the shift crosses midnight.
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return Item{
		ID:        fmt.Sprintf("duty-%s-%s", d.ID.Hex(), s.ID.Hex()),
		Title:     d.Name,
		Start:     start,
		End:       end,
		Kind:      KindDuty,
		SoldierID: s.ID,
		Status:    presence.OnDuty,
	}, true
}

func referralItem(s models.Soldier, ref *models.Referral) (Item, bool) {
	if ref.SoldierID != s.ID {
		return Item{}, false
	}
	start, ok := at(ref.Date, ref.DepartureTime)
	if !ok {
		return Item{}, false
	}
	end, ok := at(ref.Date, ref.ReturnTime)
	if !ok || !valid(start, end) {
		return Item{}, false
	}
	return Item{
		ID:        fmt.Sprintf("referral-%s", ref.ID.Hex()),
		Title:     ref.Reason,
		Start:     start,
		End:       end,
		Kind:      KindReferral,
		SoldierID: s.ID,
		Status:    presence.OnReferral,
	}, true
}

func tripItem(s models.Soldier, t *models.Trip) (Item, bool) {
	if t.DriverID != s.ID || t.ReturnAt == nil {
		return Item{}, false
	}
	if !valid(t.DepartureAt, *t.ReturnAt) {
		return Item{}, false
	}
	return Item{
		ID:        fmt.Sprintf("trip-%s", t.ID.Hex()),
		Title:     t.Purpose,
		Start:     t.DepartureAt,
		End:       *t.ReturnAt,
		Kind:      KindTrip,
		SoldierID: s.ID,
		Status:    presence.OnTrip,
	}, true
}

// absenceItem covers the soldier's current absence-gated status, from now
// to its end. An already-lapsed window produces no item.
func absenceItem(s models.Soldier, now time.Time) (Item, bool) {
	status := presence.Status(s.Presence)
	if !presence.RequiresAbsenceDate(status) || s.AbsenceUntil == nil {
		return Item{}, false
	}
	if !valid(now, *s.AbsenceUntil) {
		return Item{}, false
	}
	return Item{
		ID:        fmt.Sprintf("absence-%s", s.ID.Hex()),
		Title:     presence.LabelOf(status),
		Start:     now,
		End:       *s.AbsenceUntil,
		Kind:      KindAbsence,
		SoldierID: s.ID,
		Status:    status,
	}, true
}

// restItem covers a driver's mandatory rest: the explicit RestUntil window
// when set, otherwise inferred from the most recent completed trip's
// return time.
func restItem(s models.Soldier, trips []models.Trip, now time.Time) (Item, bool) {
	if !s.IsDriver() {
		return Item{}, false
	}

	var start, end time.Time
	if s.RestUntil != nil && !s.RestUntil.IsZero() {
		start = s.RestUntil.Add(-RestWindow)
		end = *s.RestUntil
	} else {
		var latest *time.Time
		for i := range trips {
			t := &trips[i]
			if t.DriverID != s.ID || t.Status != models.TripCompleted || t.ReturnAt == nil {
				continue
			}
			if t.ReturnAt.After(now) {
				continue
			}
			if latest == nil || t.ReturnAt.After(*latest) {
				latest = t.ReturnAt
			}
		}
		if latest == nil {
			return Item{}, false
		}
		start = *latest
		end = latest.Add(RestWindow)
	}
	if !valid(start, end) {
		return Item{}, false
	}
	return Item{
		ID:        fmt.Sprintf("rest-%s", s.ID.Hex()),
		Title:     presence.LabelOf(presence.Resting),
		Start:     start,
		End:       end,
		Kind:      KindRest,
		SoldierID: s.ID,
		Status:    presence.Resting,
	}, true
}
