// internal/app/store/frameworks/frameworkstore.go
package frameworkstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/unitops/rollcall/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrDuplicateName = errors.New("a framework with this name already exists")
	ErrHasChildren   = errors.New("framework still has child frameworks")
	ErrHasSoldiers   = errors.New("framework still has assigned soldiers")
	ErrOwnParent     = errors.New("a framework cannot be its own parent")
)

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("frameworks")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Framework, error) {
	var f models.Framework
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		return models.Framework{}, err
	}
	return f, nil
}

func (s *Store) Create(ctx context.Context, f models.Framework) (models.Framework, error) {
	now := time.Now().UTC()
	f.ID = primitive.NewObjectID()
	f.NameCI = text.Fold(f.Name)
	if f.Kind == "" {
		f.Kind = models.FrameworkOther
	}
	f.CreatedAt = now
	f.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, f); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Framework{}, ErrDuplicateName
		}
		return models.Framework{}, err
	}
	return f, nil
}

// UpdateInfo updates name, kind, and parent. The write path keeps the tree
// a tree: self-parenting is rejected here, and moving a framework under
// one of its own descendants is rejected by the handler, which has the
// full tree loaded.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, name, kind string, parentID *primitive.ObjectID) error {
	if parentID != nil && *parentID == id {
		return ErrOwnParent
	}
	set := bson.M{"updated_at": time.Now().UTC()}
	if strings.TrimSpace(name) != "" {
		set["name"] = name
		set["name_ci"] = text.Fold(name)
	}
	if kind != "" {
		set["kind"] = kind
	}
	update := bson.M{"$set": set}
	if parentID != nil {
		set["parent_id"] = *parentID
	} else {
		update["$unset"] = bson.M{"parent_id": ""}
	}
	_, err := s.c.UpdateByID(ctx, id, update)
	if err != nil && wafflemongo.IsDup(err) {
		return ErrDuplicateName
	}
	return err
}

// Delete removes a framework. It refuses while child frameworks or
// soldiers still reference it, so stale references cannot appear.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	children, err := s.c.CountDocuments(ctx, bson.M{"parent_id": id})
	if err != nil {
		return err
	}
	if children > 0 {
		return ErrHasChildren
	}
	soldiers, err := s.db.Collection("soldiers").CountDocuments(ctx, bson.M{"framework_id": id})
	if err != nil {
		return err
	}
	if soldiers > 0 {
		return ErrHasSoldiers
	}
	_, err = s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// ListAll returns every framework; the hierarchy walks (domain/hierarchy)
// take the full list.
func (s *Store) ListAll(ctx context.Context) ([]models.Framework, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Framework
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountAll returns the number of frameworks.
func (s *Store) CountAll(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
