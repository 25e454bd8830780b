// internal/app/store/activities/activitystore.go
package activitystore

import (
	"context"
	"time"

	"github.com/unitops/rollcall/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("activities")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Activity, error) {
	var a models.Activity
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

func (s *Store) Create(ctx context.Context, a models.Activity) (models.Activity, error) {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, a); err != nil {
		return models.Activity{}, err
	}
	return a, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByParticipant returns activities that include the soldier.
func (s *Store) ListByParticipant(ctx context.Context, soldierID primitive.ObjectID) ([]models.Activity, error) {
	return s.list(ctx, bson.M{"participant_ids": soldierID})
}

// ListByFrameworkIDs returns activities planned for any of the frameworks.
func (s *Store) ListByFrameworkIDs(ctx context.Context, frameworkIDs []primitive.ObjectID) ([]models.Activity, error) {
	if len(frameworkIDs) == 0 {
		return nil, nil
	}
	return s.list(ctx, bson.M{"framework_id": bson.M{"$in": frameworkIDs}})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Activity, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "planned_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Activity
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
