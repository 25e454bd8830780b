package userstore_test

import (
	"testing"

	userstore "github.com/unitops/rollcall/internal/app/store/users"
	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/testutil"
)

func TestStore_CreateAndVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName:  "Dana Cohen",
		Email:     "dana@example.com",
		Role:      "commander",
		DataScope: models.ScopeAllData,
	}, "correct horse battery")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.PasswordHash == "correct horse battery" {
		t.Fatal("password stored in the clear")
	}

	got, err := store.GetByEmail(ctx, "dana@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if !userstore.VerifyPassword(got, "correct horse battery") {
		t.Error("correct password rejected")
	}
	if userstore.VerifyPassword(got, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestStore_EnsureAdminIsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureAdmin(ctx, "admin@example.com", "bootstrap-pass"); err != nil {
		t.Fatalf("EnsureAdmin failed: %v", err)
	}
	if err := store.EnsureAdmin(ctx, "admin@example.com", "bootstrap-pass"); err != nil {
		t.Fatalf("second EnsureAdmin failed: %v", err)
	}

	n, err := db.Collection("users").CountDocuments(ctx, map[string]interface{}{"email": "admin@example.com"})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("EnsureAdmin created %d accounts, want 1", n)
	}
}
