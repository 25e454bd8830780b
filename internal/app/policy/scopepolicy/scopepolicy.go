// internal/app/policy/scopepolicy.go

// Package scopepolicy decides which frameworks an operator may see.
// Decisions are pure functions over the user's scope and the framework
// tree; callers load the frameworks and pass them in.
package scopepolicy

import (
	"github.com/unitops/rollcall/internal/domain/hierarchy"
	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanAccessFramework reports whether an operator with the given scope and
// home framework may access target:
//   - all_data scope always may
//   - framework_only may iff target is the home framework or one of its
//     descendants
//
// A framework_only operator with no home framework can access nothing.
func CanAccessFramework(scope string, home primitive.ObjectID, frameworks []models.Framework, target primitive.ObjectID) bool {
	if scope == models.ScopeAllData {
		return true
	}
	if home == primitive.NilObjectID {
		return false
	}
	return hierarchy.Contains(frameworks, home, target)
}

// VisibleFrameworkIDs returns every framework id the operator may access,
// in hierarchy order. all_data yields every id; framework_only yields the
// home subtree.
func VisibleFrameworkIDs(scope string, home primitive.ObjectID, frameworks []models.Framework) []primitive.ObjectID {
	if scope == models.ScopeAllData {
		out := make([]primitive.ObjectID, 0, len(frameworks))
		for i := range frameworks {
			out = append(out, frameworks[i].ID)
		}
		return out
	}
	if home == primitive.NilObjectID {
		return nil
	}
	return hierarchy.Descendants(frameworks, home)
}
