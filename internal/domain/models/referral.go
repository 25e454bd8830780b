// internal/domain/models/referral.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Referral is an off-base errand for a single soldier (medical appointment,
// equipment pickup, ...). Date carries the calendar day; DepartureTime and
// ReturnTime are "HH:MM" on that day.
type Referral struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SoldierID     primitive.ObjectID `bson:"soldier_id" json:"soldier_id"`
	Reason        string             `bson:"reason" json:"reason"`
	Location      string             `bson:"location,omitempty" json:"location,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
	DepartureTime string             `bson:"departure_time,omitempty" json:"departure_time,omitempty"`
	ReturnTime    string             `bson:"return_time,omitempty" json:"return_time,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
