// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateFramework creates a test framework; parent may be nil for a root.
func (f *Fixtures) CreateFramework(ctx context.Context, name, kind string, parent *primitive.ObjectID) models.Framework {
	f.t.Helper()

	now := time.Now().UTC()
	fw := models.Framework{
		ID:        primitive.NewObjectID(),
		Name:      name,
		NameCI:    text.Fold(name),
		Kind:      kind,
		ParentID:  parent,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("frameworks").InsertOne(ctx, fw); err != nil {
		f.t.Fatalf("failed to create test framework: %v", err)
	}
	return fw
}

// CreateSoldier creates a test soldier at-base in the given framework.
func (f *Fixtures) CreateSoldier(ctx context.Context, name string, frameworkID primitive.ObjectID) models.Soldier {
	f.t.Helper()
	return f.CreateSoldierWithPresence(ctx, name, frameworkID, presence.AtBase, "", nil)
}

// CreateSoldierWithPresence creates a test soldier with an explicit
// presence status and companions.
func (f *Fixtures) CreateSoldierWithPresence(ctx context.Context, name string, frameworkID primitive.ObjectID, status presence.Status, detail string, until *time.Time) models.Soldier {
	f.t.Helper()

	now := time.Now().UTC()
	s := models.Soldier{
		ID:             primitive.NewObjectID(),
		Name:           name,
		NameCI:         text.Fold(name),
		PersonalNumber: primitive.NewObjectID().Hex()[:8],
		FrameworkID:    frameworkID,
		Presence:       string(status),
		PresenceDetail: detail,
		AbsenceUntil:   until,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := f.db.Collection("soldiers").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test soldier: %v", err)
	}
	return s
}

// CreateDriver creates a test soldier holding the driver qualification.
func (f *Fixtures) CreateDriver(ctx context.Context, name string, frameworkID primitive.ObjectID) models.Soldier {
	f.t.Helper()

	now := time.Now().UTC()
	s := models.Soldier{
		ID:             primitive.NewObjectID(),
		Name:           name,
		NameCI:         text.Fold(name),
		PersonalNumber: primitive.NewObjectID().Hex()[:8],
		FrameworkID:    frameworkID,
		Qualifications: []string{models.QualificationDriver},
		Presence:       string(presence.AtBase),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := f.db.Collection("soldiers").InsertOne(ctx, s); err != nil {
		f.t.Fatalf("failed to create test driver: %v", err)
	}
	return s
}

// CreateUser creates a test operator account. The password hash is fake;
// login tests create users through the store instead.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role, scope string, home *primitive.ObjectID) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:              primitive.NewObjectID(),
		FullName:        fullName,
		FullNameCI:      text.Fold(fullName),
		Email:           email,
		PasswordHash:    "test-not-a-hash",
		Role:            role,
		DataScope:       scope,
		HomeFrameworkID: home,
		Status:          "active",
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateTrip creates a completed test trip for the given driver.
func (f *Fixtures) CreateTrip(ctx context.Context, driverID primitive.ObjectID, departure time.Time, returnAt *time.Time, status string) models.Trip {
	f.t.Helper()

	now := time.Now().UTC()
	tr := models.Trip{
		ID:          primitive.NewObjectID(),
		Purpose:     "Test trip",
		DriverID:    driverID,
		DepartureAt: departure,
		ReturnAt:    returnAt,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := f.db.Collection("trips").InsertOne(ctx, tr); err != nil {
		f.t.Fatalf("failed to create test trip: %v", err)
	}
	return tr
}
