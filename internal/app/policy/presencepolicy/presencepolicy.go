// internal/app/policy/presencepolicy.go

// Package presencepolicy decides who may change a soldier's presence.
package presencepolicy

import (
	"github.com/unitops/rollcall/internal/app/policy/scopepolicy"
	"github.com/unitops/rollcall/internal/app/system/authz"
	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanEditPresence reports whether an operator may change the presence of a
// soldier assigned to soldierFramework:
//   - viewers never
//   - admins always
//   - commanders and sergeants within their data scope
func CanEditPresence(role, scope string, home primitive.ObjectID, frameworks []models.Framework, soldierFramework primitive.ObjectID) bool {
	switch role {
	case authz.RoleAdmin:
		return true
	case authz.RoleCommander, authz.RoleSergeant:
		return scopepolicy.CanAccessFramework(scope, home, frameworks, soldierFramework)
	default:
		return false
	}
}
