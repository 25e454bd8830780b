package hierarchy

import (
	"testing"

	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func fw(id primitive.ObjectID, parent *primitive.ObjectID, name string) models.Framework {
	return models.Framework{ID: id, Name: name, ParentID: parent}
}

func ids(n int) []primitive.ObjectID {
	out := make([]primitive.ObjectID, n)
	for i := range out {
		out[i] = primitive.NewObjectID()
	}
	return out
}

func contains(list []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

func TestDescendantsThreeLevels(t *testing.T) {
	id := ids(3)
	company, platoon, squad := id[0], id[1], id[2]
	frameworks := []models.Framework{
		fw(company, nil, "Company A"),
		fw(platoon, &company, "Platoon 1"),
		fw(squad, &platoon, "Squad 1"),
	}

	got := Descendants(frameworks, company)
	if len(got) != 3 {
		t.Fatalf("Descendants returned %d ids, want 3: %v", len(got), got)
	}
	for _, want := range id {
		if !contains(got, want) {
			t.Errorf("Descendants missing %v", want)
		}
	}
	if got[0] != company {
		t.Errorf("Descendants must start at the root, got %v", got[0])
	}
}

func TestDescendantsLeaf(t *testing.T) {
	id := ids(2)
	frameworks := []models.Framework{
		fw(id[0], nil, "Company A"),
		fw(id[1], &id[0], "Platoon 1"),
	}
	got := Descendants(frameworks, id[1])
	if len(got) != 1 || got[0] != id[1] {
		t.Errorf("Descendants(leaf) = %v, want [%v]", got, id[1])
	}
}

func TestDescendantsUnknownID(t *testing.T) {
	id := ids(2)
	frameworks := []models.Framework{fw(id[0], nil, "Company A")}
	if got := Descendants(frameworks, id[1]); len(got) != 0 {
		t.Errorf("Descendants(unknown) = %v, want empty", got)
	}
}

func TestDescendantsSurvivesCycle(t *testing.T) {
	id := ids(2)
	// a <-> b parent cycle, the kind of corruption the write path should
	// prevent but the read path must still survive.
	frameworks := []models.Framework{
		fw(id[0], &id[1], "A"),
		fw(id[1], &id[0], "B"),
	}
	got := Descendants(frameworks, id[0])
	if len(got) != 2 {
		t.Errorf("Descendants(cycle) = %v, want both ids exactly once", got)
	}
}

func TestDescendantsSelfParent(t *testing.T) {
	id := ids(1)
	frameworks := []models.Framework{fw(id[0], &id[0], "Own parent")}
	got := Descendants(frameworks, id[0])
	if len(got) != 1 || got[0] != id[0] {
		t.Errorf("Descendants(self-parent) = %v, want [%v]", got, id[0])
	}
}

func TestAncestorsOrder(t *testing.T) {
	id := ids(3)
	company, platoon, squad := id[0], id[1], id[2]
	frameworks := []models.Framework{
		fw(company, nil, "Company A"),
		fw(platoon, &company, "Platoon 1"),
		fw(squad, &platoon, "Squad 1"),
	}

	got := Ancestors(frameworks, squad)
	want := []primitive.ObjectID{squad, platoon, company}
	if len(got) != len(want) {
		t.Fatalf("Ancestors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Ancestors[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAncestorsUnknownID(t *testing.T) {
	id := ids(2)
	frameworks := []models.Framework{fw(id[0], nil, "Company A")}
	if got := Ancestors(frameworks, id[1]); len(got) != 0 {
		t.Errorf("Ancestors(unknown) = %v, want empty", got)
	}
}

func TestAncestorsDanglingParent(t *testing.T) {
	id := ids(2)
	// Parent points at a deleted framework; the chain stops before it.
	frameworks := []models.Framework{fw(id[0], &id[1], "Orphan")}
	got := Ancestors(frameworks, id[0])
	if len(got) != 1 || got[0] != id[0] {
		t.Errorf("Ancestors(dangling) = %v, want [%v]", got, id[0])
	}
}

func TestAncestorsSurvivesCycle(t *testing.T) {
	id := ids(2)
	frameworks := []models.Framework{
		fw(id[0], &id[1], "A"),
		fw(id[1], &id[0], "B"),
	}
	got := Ancestors(frameworks, id[0])
	if len(got) != 2 {
		t.Errorf("Ancestors(cycle) = %v, want termination after both ids", got)
	}
}

func TestContains(t *testing.T) {
	id := ids(3)
	company, platoon, other := id[0], id[1], id[2]
	frameworks := []models.Framework{
		fw(company, nil, "Company A"),
		fw(platoon, &company, "Platoon 1"),
		fw(other, nil, "Company B"),
	}
	if !Contains(frameworks, company, platoon) {
		t.Error("Contains(company, platoon) = false, want true")
	}
	if Contains(frameworks, platoon, company) {
		t.Error("Contains(platoon, company) = true, want false")
	}
	if Contains(frameworks, company, other) {
		t.Error("Contains(company, other company) = true, want false")
	}
}
