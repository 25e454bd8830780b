// internal/domain/presence/status.go

// Package presence is the availability-status engine for soldiers: the
// closed status enumeration, its display and priority tables, the predicate
// and report-mapping rules, and the roll-call aggregation used by every
// framework view.
//
// Presence data originates from a loosely typed document store, so every
// function here is total: an unrecognized status value degrades to defined
// defaults instead of failing a whole page render.
package presence

// Status is a soldier's current whereabouts/activity category.
type Status string

// The closed set of presence statuses.
const (
	AtBase      Status = "at_base"
	OnActivity  Status = "on_activity"
	OnTrip      Status = "on_trip"
	OnDuty      Status = "on_duty"
	OnReferral  Status = "on_referral"
	Resting     Status = "resting"
	Course      Status = "course"
	ReserveDuty Status = "reserve_duty"
	Leave       Status = "leave"
	Other       Status = "other"
)

// info is the single source of truth for everything derived from a status.
// Keeping one record per status (instead of parallel switch statements)
// guarantees no status can have a label without a color or a priority.
type info struct {
	label string // Hebrew display label
	color string // display color token
	// priority orders simultaneous candidate states; higher wins.
	priority int
	// needsUntil marks absence-gated statuses that carry an end timestamp.
	needsUntil bool
	// needsDetail marks statuses that carry free-form text.
	needsDetail bool
	// report is the coarse roll-call category this status folds into.
	report Status
}

var table = map[Status]info{
	AtBase:      {label: "בבסיס", color: "#4caf50", priority: 0, report: AtBase},
	Resting:     {label: "במנוחה", color: "#03a9f4", priority: 1, report: AtBase},
	OnActivity:  {label: "בפעילות", color: "#2196f3", priority: 2, report: AtBase},
	OnTrip:      {label: "בנסיעה", color: "#ff9800", priority: 3, report: AtBase},
	OnDuty:      {label: "בתורנות", color: "#9c27b0", priority: 4, report: AtBase},
	OnReferral:  {label: "בהפניה", color: "#009688", priority: 5, report: AtBase},
	Course:      {label: "קורס", color: "#ffc107", priority: 6, needsUntil: true, needsDetail: true, report: Course},
	ReserveDuty: {label: "גימלים", color: "#795548", priority: 7, needsUntil: true, report: ReserveDuty},
	Leave:       {label: "חופש", color: "#f44336", priority: 8, needsUntil: true, report: Leave},
	// An "other" location is still on-base for roll-call purposes.
	Other: {label: "אחר", color: "#607d8b", priority: 9, needsDetail: true, report: AtBase},
}

// order is the stable sequence used to populate selection UI.
var order = []Status{
	AtBase, OnActivity, OnTrip, OnDuty, OnReferral,
	Resting, Course, ReserveDuty, Leave, Other,
}

// Defaults for unrecognized status values (legacy or corrupted records).
const (
	DefaultLabel = "לא ידוע"
	DefaultColor = "#9e9e9e"
)

// All returns every status in a stable order suitable for pickers.
func All() []Status {
	out := make([]Status, len(order))
	copy(out, order)
	return out
}

// Known reports whether s is one of the closed enum values.
func Known(s Status) bool {
	_, ok := table[s]
	return ok
}

// LabelOf returns the display label for s, or DefaultLabel for an
// unrecognized value.
func LabelOf(s Status) string {
	if in, ok := table[s]; ok {
		return in.label
	}
	return DefaultLabel
}

// ColorOf returns the display color token for s, or DefaultColor for an
// unrecognized value.
func ColorOf(s Status) string {
	if in, ok := table[s]; ok {
		return in.color
	}
	return DefaultColor
}

// PriorityOf returns the tie-breaking priority for s; higher wins when a
// soldier could be described by multiple simultaneous states. Unrecognized
// values rank lowest.
func PriorityOf(s Status) int {
	if in, ok := table[s]; ok {
		return in.priority
	}
	return -1
}
