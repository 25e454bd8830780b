// internal/domain/presence/aggregate.go
package presence

import (
	"fmt"

	"github.com/unitops/rollcall/internal/domain/models"
)

// Availability returns the "m/n" headline for a soldier set: m soldiers
// whose raw stored status is at-base out of n total. Callers pass the
// complete descendant-inclusive soldier set of a framework (expand via
// domain/hierarchy first); an empty set yields "0/0".
func Availability(soldiers []models.Soldier) string {
	m := 0
	for i := range soldiers {
		if Status(soldiers[i].Presence) == AtBase {
			m++
		}
	}
	return fmt.Sprintf("%d/%d", m, len(soldiers))
}

// Present returns the "m/n" roll-call headline: m soldiers whose mapped
// report status resolves to at-base (folding activity/duty/referral/trip/
// rest back into "present") out of n total.
func Present(soldiers []models.Soldier) string {
	m := 0
	for i := range soldiers {
		if MapForReport(Status(soldiers[i].Presence)) == AtBase {
			m++
		}
	}
	return fmt.Sprintf("%d/%d", m, len(soldiers))
}
