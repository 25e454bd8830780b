// internal/domain/models/soldier.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QualificationDriver marks a soldier who may be assigned as a trip driver.
// Drivers get mandatory rest windows after trips (see domain/timeline).
const QualificationDriver = "driver"

// Soldier represents one member of the company.
//
// NOTE:
//   - Presence holds the raw stored status string (see domain/presence).
//     The stored value may be stale for absence-gated statuses; readers
//     must go through presence.Effective for display.
//   - PresenceDetail and AbsenceUntil are companions of Presence and are
//     populated only when the status requires them. Clearing them on a
//     status change is the soldier store's responsibility, not the caller's.
type Soldier struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	NameCI         string             `bson:"name_ci" json:"name_ci"`
	PersonalNumber string             `bson:"personal_number" json:"personal_number"`
	FrameworkID    primitive.ObjectID `bson:"framework_id" json:"framework_id"`
	Role           string             `bson:"role,omitempty" json:"role,omitempty"`
	Qualifications []string           `bson:"qualifications,omitempty" json:"qualifications,omitempty"`

	Presence       string     `bson:"presence,omitempty" json:"presence,omitempty"`
	PresenceDetail string     `bson:"presence_detail,omitempty" json:"presence_detail,omitempty"`
	AbsenceUntil   *time.Time `bson:"absence_until,omitempty" json:"absence_until,omitempty"`

	// RestUntil is the explicit end of a driver's rest window, when set.
	RestUntil *time.Time `bson:"rest_until,omitempty" json:"rest_until,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsDriver reports whether the soldier holds the driver qualification.
func (s *Soldier) IsDriver() bool {
	for _, q := range s.Qualifications {
		if q == QualificationDriver {
			return true
		}
	}
	return false
}
