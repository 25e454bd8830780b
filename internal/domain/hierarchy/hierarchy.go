// internal/domain/hierarchy/hierarchy.go

// Package hierarchy resolves the company's framework tree: descendant
// expansion for "all soldiers under X" queries and ancestor chains for
// breadcrumbs and permission scoping.
//
// Frameworks reference their parent by id, so malformed data can contain
// cycles or dangling references. Both walks carry a visited set and
// terminate on any input; a revisited id is treated as terminal rather
// than looped over.
package hierarchy

import (
	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Descendants returns rootID plus every transitive child framework id,
// in breadth-first order. An id that does not exist in frameworks yields
// an empty result (stale references must not fail the caller).
func Descendants(frameworks []models.Framework, rootID primitive.ObjectID) []primitive.ObjectID {
	known := make(map[primitive.ObjectID]struct{}, len(frameworks))
	children := make(map[primitive.ObjectID][]primitive.ObjectID, len(frameworks))
	for i := range frameworks {
		f := &frameworks[i]
		known[f.ID] = struct{}{}
		if f.ParentID != nil {
			children[*f.ParentID] = append(children[*f.ParentID], f.ID)
		}
	}
	if _, ok := known[rootID]; !ok {
		return nil
	}

	visited := map[primitive.ObjectID]struct{}{rootID: {}}
	out := []primitive.ObjectID{rootID}
	queue := []primitive.ObjectID{rootID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range children[cur] {
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out
}

// Ancestors returns [id, parent, grandparent, ...] up to the root. An id
// that does not exist in frameworks yields an empty result; a dangling
// parent reference ends the chain. A parent cycle terminates at the first
// repeated id.
func Ancestors(frameworks []models.Framework, id primitive.ObjectID) []primitive.ObjectID {
	byID := make(map[primitive.ObjectID]*models.Framework, len(frameworks))
	for i := range frameworks {
		byID[frameworks[i].ID] = &frameworks[i]
	}

	visited := make(map[primitive.ObjectID]struct{})
	var out []primitive.ObjectID
	cur := id
	for {
		f, ok := byID[cur]
		if !ok {
			return out
		}
		if _, seen := visited[cur]; seen {
			return out
		}
		visited[cur] = struct{}{}
		out = append(out, cur)

		if f.ParentID == nil {
			return out
		}
		cur = *f.ParentID
	}
}

// Contains reports whether target is rootID or one of its descendants.
// This is the dataScope check for framework_only operators.
func Contains(frameworks []models.Framework, rootID, target primitive.ObjectID) bool {
	for _, id := range Descendants(frameworks, rootID) {
		if id == target {
			return true
		}
	}
	return false
}
