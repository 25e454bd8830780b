// internal/domain/models/duty.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Duty is a scheduled shift (guard, kitchen, gate, ...) with a participant
// list. StartDate carries the calendar day; StartTime/EndTime are "HH:MM".
// An EndTime at or before StartTime means the shift rolls past midnight.
type Duty struct {
	ID             primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name           string               `bson:"name" json:"name"`
	Location       string               `bson:"location,omitempty" json:"location,omitempty"`
	StartDate      time.Time            `bson:"start_date" json:"start_date"`
	StartTime      string               `bson:"start_time,omitempty" json:"start_time,omitempty"`
	EndTime        string               `bson:"end_time,omitempty" json:"end_time,omitempty"`
	ParticipantIDs []primitive.ObjectID `bson:"participant_ids,omitempty" json:"participant_ids,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
