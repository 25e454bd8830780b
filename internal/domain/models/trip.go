// internal/domain/models/trip.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trip statuses.
const (
	TripPlanned    = "planned"
	TripInProgress = "in_progress"
	TripCompleted  = "completed"
)

// Trip is a vehicle trip with an assigned driver. ReturnAt is set when the
// trip is completed (or planned with a known return); a completed trip's
// return time seeds the driver's inferred rest window.
type Trip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Purpose     string             `bson:"purpose" json:"purpose"`
	DriverID    primitive.ObjectID `bson:"driver_id" json:"driver_id"`
	DepartureAt time.Time          `bson:"departure_at" json:"departure_at"`
	ReturnAt    *time.Time         `bson:"return_at,omitempty" json:"return_at,omitempty"`
	Status      string             `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
