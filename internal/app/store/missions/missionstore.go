// internal/app/store/missions/missionstore.go
package missionstore

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
	return &Store{c: db.Collection("missions")}
}

func (s *Store) Create(ctx context.Context, m models.Mission) (models.Mission, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	if m.Status == "" {
		m.Status = models.MissionOpen
	}
	m.CreatedAt = now
	m.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Mission{}, err
	}
	return m, nil
}

// ListByFrameworkIDs returns missions for any of the frameworks, due
// soonest first.
func (s *Store) ListByFrameworkIDs(ctx context.Context, frameworkIDs []primitive.ObjectID) ([]models.Mission, error) {
	if len(frameworkIDs) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"framework_id": bson.M{"$in": frameworkIDs}},
		options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Mission
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountOpen returns the number of missions still open.
func (s *Store) CountOpen(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"status": models.MissionOpen})
}
