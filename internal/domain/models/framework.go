// internal/domain/models/framework.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Framework kinds, from company down to team. Kind is informational;
// the hierarchy itself is carried by ParentID links.
const (
	FrameworkCompany = "company"
	FrameworkPlatoon = "platoon"
	FrameworkSquad   = "squad"
	FrameworkTeam    = "team"
	FrameworkOther   = "other"
)

// Framework is an organizational unit in the company's command hierarchy.
// Each framework has at most one parent (ParentID nil for the root), so the
// collection forms a tree. The write path must not create cycles; the
// read-side walk (domain/hierarchy) still guards against them.
type Framework struct {
	ID       primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name     string              `bson:"name" json:"name"`
	NameCI   string              `bson:"name_ci" json:"name_ci"`
	Kind     string              `bson:"kind,omitempty" json:"kind,omitempty"`
	ParentID *primitive.ObjectID `bson:"parent_id,omitempty" json:"parent_id,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
