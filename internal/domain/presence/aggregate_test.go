package presence

import (
	"testing"

	"github.com/unitops/rollcall/internal/domain/models"
)

func soldierWith(status Status) models.Soldier {
	return models.Soldier{Presence: string(status)}
}

func TestAvailabilityEmpty(t *testing.T) {
	if got := Availability(nil); got != "0/0" {
		t.Errorf("Availability(nil) = %q, want 0/0", got)
	}
	if got := Present(nil); got != "0/0" {
		t.Errorf("Present(nil) = %q, want 0/0", got)
	}
}

func TestAvailabilityVsPresent(t *testing.T) {
	soldiers := []models.Soldier{
		soldierWith(AtBase),
		soldierWith(AtBase),
		soldierWith(OnTrip),
	}
	if got := Availability(soldiers); got != "2/3" {
		t.Errorf("Availability = %q, want 2/3", got)
	}
	// A trip still counts as present for roll-call.
	if got := Present(soldiers); got != "3/3" {
		t.Errorf("Present = %q, want 3/3", got)
	}
}

func TestPresentExcludesTrueAbsences(t *testing.T) {
	soldiers := []models.Soldier{
		soldierWith(AtBase),
		soldierWith(OnDuty),
		soldierWith(Leave),
		soldierWith(ReserveDuty),
		soldierWith(Course),
		{Presence: "legacy-value"},
	}
	if got := Availability(soldiers); got != "1/6" {
		t.Errorf("Availability = %q, want 1/6", got)
	}
	// duty and the unrecognized legacy value fold to present.
	if got := Present(soldiers); got != "3/6" {
		t.Errorf("Present = %q, want 3/6", got)
	}
}
