// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Data scopes for operator accounts. A framework_only operator is confined
// to their home framework and everything under it (see policy/scopepolicy).
const (
	ScopeAllData       = "all_data"
	ScopeFrameworkOnly = "framework_only"
)

// User is an operator account for the application itself (not a soldier).
// Role is one of admin | commander | sergeant | viewer.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"full_name" json:"full_name"`
	FullNameCI   string             `bson:"full_name_ci" json:"full_name_ci"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`

	DataScope       string              `bson:"data_scope" json:"data_scope"`
	HomeFrameworkID *primitive.ObjectID `bson:"home_framework_id,omitempty" json:"home_framework_id,omitempty"`

	Status    string    `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
