// internal/app/store/soldiers/soldierstore.go
package soldierstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/unitops/rollcall/internal/app/system/htmlsanitize"
	"github.com/unitops/rollcall/internal/domain/models"
	"github.com/unitops/rollcall/internal/domain/presence"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrDuplicatePersonalNumber = errors.New("a soldier with this personal number already exists")
	ErrUnknownStatus           = errors.New("unknown presence status")
	ErrAbsenceDateRequired     = errors.New("this status requires an absence end date")
	ErrDetailRequired          = errors.New("this status requires accompanying text")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("soldiers")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Soldier, error) {
	var sol models.Soldier
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sol); err != nil {
		return models.Soldier{}, err
	}
	return sol, nil
}

func (s *Store) Create(ctx context.Context, sol models.Soldier) (models.Soldier, error) {
	now := time.Now().UTC()
	sol.ID = primitive.NewObjectID()
	sol.NameCI = text.Fold(sol.Name)
	if sol.Presence == "" {
		sol.Presence = string(presence.AtBase)
	}
	sol.CreatedAt = now
	sol.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, sol); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Soldier{}, ErrDuplicatePersonalNumber
		}
		return models.Soldier{}, err
	}
	return sol, nil
}

// UpdateInfo updates the identity fields; presence is changed only through
// SetPresence.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, name, role string, qualifications []string) error {
	set := bson.M{"updated_at": time.Now().UTC()}
	if name != "" {
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	set["role"] = role
	set["qualifications"] = qualifications
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}

// Reassign moves a soldier to a different framework.
func (s *Store) Reassign(ctx context.Context, id, frameworkID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"framework_id": frameworkID,
		"updated_at":   time.Now().UTC(),
	}})
	return err
}

// SetPresence is the single write path for a soldier's presence. It
// validates the status's companion requirements, sanitizes the free-text
// detail, and clears ("$unset") whichever companions the new status does
// not require; stale absence dates and detail text must never survive a
// status change.
func (s *Store) SetPresence(ctx context.Context, id primitive.ObjectID, status presence.Status, detail string, until *time.Time) error {
	if !presence.Known(status) {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	detail = htmlsanitize.Text(detail)
	if presence.RequiresAbsenceDate(status) && (until == nil || until.IsZero()) {
		return ErrAbsenceDateRequired
	}
	if presence.RequiresCustomText(status) && detail == "" {
		return ErrDetailRequired
	}

	set := bson.M{
		"presence":   string(status),
		"updated_at": time.Now().UTC(),
	}
	unset := bson.M{}
	if presence.RequiresAbsenceDate(status) {
		set["absence_until"] = until.UTC()
	} else {
		unset["absence_until"] = ""
	}
	if presence.RequiresCustomText(status) {
		set["presence_detail"] = detail
	} else {
		unset["presence_detail"] = ""
	}

	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	res, err := s.c.UpdateByID(ctx, id, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SetRest sets or clears a driver's explicit rest window.
func (s *Store) SetRest(ctx context.Context, id primitive.ObjectID, until *time.Time) error {
	update := bson.M{"$set": bson.M{"updated_at": time.Now().UTC()}}
	if until == nil || until.IsZero() {
		update["$unset"] = bson.M{"rest_until": ""}
	} else {
		update["$set"].(bson.M)["rest_until"] = until.UTC()
	}
	_, err := s.c.UpdateByID(ctx, id, update)
	return err
}

// Delete removes a soldier by ID. Returns the number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByFramework returns the direct members of one framework.
func (s *Store) ListByFramework(ctx context.Context, frameworkID primitive.ObjectID) ([]models.Soldier, error) {
	return s.list(ctx, bson.M{"framework_id": frameworkID})
}

// ListByFrameworkIDs returns all soldiers in any of the given frameworks;
// callers expand a framework to its descendants first (domain/hierarchy).
func (s *Store) ListByFrameworkIDs(ctx context.Context, frameworkIDs []primitive.ObjectID) ([]models.Soldier, error) {
	if len(frameworkIDs) == 0 {
		return nil, nil
	}
	return s.list(ctx, bson.M{"framework_id": bson.M{"$in": frameworkIDs}})
}

// ListAll returns every soldier, ordered by folded name.
func (s *Store) ListAll(ctx context.Context) ([]models.Soldier, error) {
	return s.list(ctx, bson.M{})
}

// CountAll returns the number of soldiers.
func (s *Store) CountAll(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}

// CountByFramework returns the number of direct members of a framework.
func (s *Store) CountByFramework(ctx context.Context, frameworkID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"framework_id": frameworkID})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Soldier, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Soldier
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
