package authz

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/unitops/rollcall/internal/app/system/auth"
	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func reqWith(u *auth.SessionUser) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if u == nil {
		return r
	}
	return auth.WithUser(r, u)
}

func TestUserCtxAnonymous(t *testing.T) {
	role, name, id, ok := UserCtx(reqWith(nil))
	if ok || role != "visitor" || name != "" || id != primitive.NilObjectID {
		t.Errorf("UserCtx(anonymous) = %q, %q, %v, %v", role, name, id, ok)
	}
}

func TestUserCtxMalformedID(t *testing.T) {
	_, _, _, ok := UserCtx(reqWith(&auth.SessionUser{ID: "not-hex", Role: "admin"}))
	if ok {
		t.Error("UserCtx accepted a malformed user ID")
	}
}

func TestUserCtxNormalizesRole(t *testing.T) {
	id := primitive.NewObjectID()
	role, _, gotID, ok := UserCtx(reqWith(&auth.SessionUser{ID: id.Hex(), Name: "Dana", Role: "Commander"}))
	if !ok || role != "commander" || gotID != id {
		t.Errorf("UserCtx = %q, %v, %v", role, gotID, ok)
	}
}

func TestRolePredicates(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	tests := []struct {
		role    string
		canEdit bool
	}{
		{RoleAdmin, true},
		{RoleCommander, true},
		{RoleSergeant, true},
		{RoleViewer, false},
	}
	for _, tt := range tests {
		r := reqWith(&auth.SessionUser{ID: id, Role: tt.role})
		if got := CanEdit(r); got != tt.canEdit {
			t.Errorf("CanEdit(%s) = %v, want %v", tt.role, got, tt.canEdit)
		}
	}
}

func TestUserScopeDefaultsClosed(t *testing.T) {
	if got := UserScope(reqWith(nil)); got != models.ScopeFrameworkOnly {
		t.Errorf("UserScope(anonymous) = %q, want framework_only", got)
	}
	id := primitive.NewObjectID().Hex()
	r := reqWith(&auth.SessionUser{ID: id, Role: RoleAdmin, DataScope: models.ScopeAllData})
	if got := UserScope(r); got != models.ScopeAllData {
		t.Errorf("UserScope = %q, want all_data", got)
	}
}

func TestUserHomeFramework(t *testing.T) {
	fwID := primitive.NewObjectID()
	r := reqWith(&auth.SessionUser{
		ID:              primitive.NewObjectID().Hex(),
		Role:            RoleSergeant,
		HomeFrameworkID: fwID.Hex(),
	})
	if got := UserHomeFramework(r); got != fwID {
		t.Errorf("UserHomeFramework = %v, want %v", got, fwID)
	}
	if got := UserHomeFramework(reqWith(nil)); got != primitive.NilObjectID {
		t.Errorf("UserHomeFramework(anonymous) = %v, want nil", got)
	}
}
