// internal/domain/models/auditevent.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit actions.
const (
	AuditPresenceChange = "presence_change"
	AuditRestChange     = "rest_change"
)

// AuditEvent records one operator action against a soldier, currently
// presence and rest-window changes. Detail is a human-readable summary
// ("leave until 2026-03-01 -> at_base").
type AuditEvent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	At        time.Time          `bson:"at" json:"at"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	Action    string             `bson:"action" json:"action"`
	SoldierID primitive.ObjectID `bson:"soldier_id" json:"soldier_id"`
	Detail    string             `bson:"detail,omitempty" json:"detail,omitempty"`
}
