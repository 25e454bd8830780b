// internal/domain/presence/predicates.go
package presence

import "time"

// RequiresAbsenceDate reports whether s carries a mandatory absence-end
// timestamp (course, reserve duty, leave).
func RequiresAbsenceDate(s Status) bool {
	return table[s].needsUntil
}

// RequiresCustomText reports whether s carries mandatory free-form text
// (course, other).
func RequiresCustomText(s Status) bool {
	return table[s].needsDetail
}

// IsAbsenceActive reports whether a time-bounded absence is still in
// effect at now. A missing end timestamp is never active. This is the
// single point of truth for absence expiry; callers must not compare
// timestamps themselves.
func IsAbsenceActive(until *time.Time, now time.Time) bool {
	if until == nil || until.IsZero() {
		return false
	}
	return !now.After(*until)
}

// MapForReport folds a status into its coarse roll-call category
// ("Report 1"): statuses that keep the soldier countable at the base
// (activity, duty, referral, trip, rest, and the at-base default for
// unrecognized values) map to AtBase; the three true-absence categories
// pass through unchanged.
func MapForReport(s Status) Status {
	in, ok := table[s]
	if !ok {
		return AtBase
	}
	return in.report
}

// Effective returns the status a soldier should be displayed as right now:
// an absence-gated status whose window has lapsed reads as AtBase without
// requiring a write (lazy expiry). All other statuses pass through.
func Effective(s Status, until *time.Time, now time.Time) Status {
	if RequiresAbsenceDate(s) && !IsAbsenceActive(until, now) {
		return AtBase
	}
	return s
}
