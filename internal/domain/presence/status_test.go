package presence

import "testing"

// Every status must have a defined label, color, and priority, and the
// priorities must be unique so tie-breaking is deterministic.
func TestTablesAreTotal(t *testing.T) {
	seen := make(map[int]Status)
	for _, s := range All() {
		if LabelOf(s) == "" || LabelOf(s) == DefaultLabel {
			t.Errorf("status %q has no label", s)
		}
		if ColorOf(s) == "" || ColorOf(s) == DefaultColor {
			t.Errorf("status %q has no color", s)
		}
		p := PriorityOf(s)
		if p < 0 {
			t.Errorf("status %q has no priority", s)
		}
		if prev, dup := seen[p]; dup {
			t.Errorf("statuses %q and %q share priority %d", prev, s, p)
		}
		seen[p] = s
	}
}

func TestAllIsStableAndComplete(t *testing.T) {
	if got := len(All()); got != 10 {
		t.Fatalf("All() returned %d statuses, want 10", got)
	}
	if All()[0] != AtBase {
		t.Errorf("All() must start with AtBase for picker defaults, got %q", All()[0])
	}
	// Mutating the returned slice must not affect later calls.
	first := All()
	first[0] = Other
	if All()[0] != AtBase {
		t.Error("All() returns a shared slice; callers can corrupt the order")
	}
}

func TestUnknownStatusFallsBack(t *testing.T) {
	const corrupt = Status("sick_bay")
	if Known(corrupt) {
		t.Fatalf("Known(%q) = true", corrupt)
	}
	if got := LabelOf(corrupt); got != DefaultLabel {
		t.Errorf("LabelOf(corrupt) = %q, want %q", got, DefaultLabel)
	}
	if got := ColorOf(corrupt); got != DefaultColor {
		t.Errorf("ColorOf(corrupt) = %q, want %q", got, DefaultColor)
	}
	if got := PriorityOf(corrupt); got != -1 {
		t.Errorf("PriorityOf(corrupt) = %d, want -1", got)
	}
}
