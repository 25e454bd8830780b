package presence

import (
	"testing"
	"time"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestRequiresAbsenceDate(t *testing.T) {
	want := map[Status]bool{
		AtBase: false, OnActivity: false, OnTrip: false, OnDuty: false,
		OnReferral: false, Resting: false, Other: false,
		Course: true, ReserveDuty: true, Leave: true,
	}
	for s, w := range want {
		if got := RequiresAbsenceDate(s); got != w {
			t.Errorf("RequiresAbsenceDate(%q) = %v, want %v", s, got, w)
		}
	}
	if RequiresAbsenceDate(Status("bogus")) {
		t.Error("unknown status must not require an absence date")
	}
}

func TestRequiresCustomText(t *testing.T) {
	for _, s := range All() {
		want := s == Course || s == Other
		if got := RequiresCustomText(s); got != want {
			t.Errorf("RequiresCustomText(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestIsAbsenceActive(t *testing.T) {
	past := now.Add(-time.Second)
	future := now.Add(time.Hour)
	var zero time.Time

	tests := []struct {
		name  string
		until *time.Time
		want  bool
	}{
		{"nil", nil, false},
		{"zero", &zero, false},
		{"past", &past, false},
		{"exactly now", &now, true},
		{"future", &future, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAbsenceActive(tt.until, now); got != tt.want {
				t.Errorf("IsAbsenceActive(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMapForReport(t *testing.T) {
	folded := []Status{AtBase, OnActivity, OnTrip, OnDuty, OnReferral, Resting, Other}
	for _, s := range folded {
		if got := MapForReport(s); got != AtBase {
			t.Errorf("MapForReport(%q) = %q, want %q", s, got, AtBase)
		}
	}
	for _, s := range []Status{Course, ReserveDuty, Leave} {
		if got := MapForReport(s); got != s {
			t.Errorf("MapForReport(%q) = %q, want pass-through", s, got)
		}
	}
	if got := MapForReport(Status("corrupted")); got != AtBase {
		t.Errorf("MapForReport(corrupted) = %q, want %q", got, AtBase)
	}
}

func TestEffective(t *testing.T) {
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name  string
		s     Status
		until *time.Time
		want  Status
	}{
		{"expired leave reverts", Leave, &past, AtBase},
		{"active leave holds", Leave, &future, Leave},
		{"leave with no end reverts", Leave, nil, AtBase},
		{"expired course reverts", Course, &past, AtBase},
		{"active reserve duty holds", ReserveDuty, &future, ReserveDuty},
		{"activity ignores until", OnActivity, &past, OnActivity},
		{"at base passes through", AtBase, nil, AtBase},
		{"other passes through", Other, &past, Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Effective(tt.s, tt.until, now); got != tt.want {
				t.Errorf("Effective(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}
