// internal/domain/models/activity.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a planned operational activity with a participant list.
// PlannedDate carries the calendar day; PlannedTime is "HH:MM" on that day.
// Records imported from the old system sometimes miss the time or duration,
// so readers must treat both as optional.
type Activity struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name          string               `bson:"name" json:"name"`
	FrameworkID   primitive.ObjectID   `bson:"framework_id" json:"framework_id"`
	PlannedDate   time.Time            `bson:"planned_date" json:"planned_date"`
	PlannedTime   string               `bson:"planned_time,omitempty" json:"planned_time,omitempty"`
	DurationHours float64              `bson:"duration_hours,omitempty" json:"duration_hours,omitempty"`
	ParticipantIDs []primitive.ObjectID `bson:"participant_ids,omitempty" json:"participant_ids,omitempty"`
	Status        string               `bson:"status,omitempty" json:"status,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
