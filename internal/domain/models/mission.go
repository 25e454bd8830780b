// internal/domain/models/mission.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mission statuses.
const (
	MissionOpen = "open"
	MissionDone = "done"
)

// Mission is a standing task assigned to a framework and a set of soldiers.
// Missions do not feed the timeline; they are listed and counted only.
type Mission struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"name"`
	FrameworkID primitive.ObjectID   `bson:"framework_id" json:"framework_id"`
	SoldierIDs  []primitive.ObjectID `bson:"soldier_ids,omitempty" json:"soldier_ids,omitempty"`
	DueDate     *time.Time           `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Status      string               `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
