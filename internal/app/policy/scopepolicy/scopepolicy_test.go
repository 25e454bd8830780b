package scopepolicy

import (
	"testing"

	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func tree() (frameworks []models.Framework, company, platoon, squad, otherCompany primitive.ObjectID) {
	company = primitive.NewObjectID()
	platoon = primitive.NewObjectID()
	squad = primitive.NewObjectID()
	otherCompany = primitive.NewObjectID()
	frameworks = []models.Framework{
		{ID: company, Name: "Company A"},
		{ID: platoon, Name: "Platoon 1", ParentID: &company},
		{ID: squad, Name: "Squad 1", ParentID: &platoon},
		{ID: otherCompany, Name: "Company B"},
	}
	return
}

func TestAllDataSeesEverything(t *testing.T) {
	frameworks, company, _, _, otherCompany := tree()
	if !CanAccessFramework(models.ScopeAllData, primitive.NilObjectID, frameworks, otherCompany) {
		t.Error("all_data denied access")
	}
	if got := VisibleFrameworkIDs(models.ScopeAllData, company, frameworks); len(got) != 4 {
		t.Errorf("all_data sees %d frameworks, want 4", len(got))
	}
}

func TestFrameworkOnlyConfinedToSubtree(t *testing.T) {
	frameworks, company, platoon, squad, otherCompany := tree()

	if !CanAccessFramework(models.ScopeFrameworkOnly, platoon, frameworks, squad) {
		t.Error("framework_only denied its own descendant")
	}
	if !CanAccessFramework(models.ScopeFrameworkOnly, platoon, frameworks, platoon) {
		t.Error("framework_only denied its own home")
	}
	if CanAccessFramework(models.ScopeFrameworkOnly, platoon, frameworks, company) {
		t.Error("framework_only granted an ancestor")
	}
	if CanAccessFramework(models.ScopeFrameworkOnly, platoon, frameworks, otherCompany) {
		t.Error("framework_only granted an unrelated framework")
	}

	got := VisibleFrameworkIDs(models.ScopeFrameworkOnly, platoon, frameworks)
	if len(got) != 2 {
		t.Errorf("framework_only sees %d frameworks, want 2 (platoon+squad)", len(got))
	}
}

func TestFrameworkOnlyWithoutHome(t *testing.T) {
	frameworks, company, _, _, _ := tree()
	if CanAccessFramework(models.ScopeFrameworkOnly, primitive.NilObjectID, frameworks, company) {
		t.Error("operator without a home framework was granted access")
	}
	if got := VisibleFrameworkIDs(models.ScopeFrameworkOnly, primitive.NilObjectID, frameworks); len(got) != 0 {
		t.Errorf("operator without a home framework sees %d frameworks, want 0", len(got))
	}
}
