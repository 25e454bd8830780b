// internal/app/store/duties/dutystore.go
package dutystore

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
	return &Store{c: db.Collection("duties")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Duty, error) {
	var d models.Duty
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		return models.Duty{}, err
	}
	return d, nil
}

func (s *Store) Create(ctx context.Context, d models.Duty) (models.Duty, error) {
	now := time.Now().UTC()
	d.ID = primitive.NewObjectID()
	d.CreatedAt = now
	d.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Duty{}, err
	}
	return d, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByParticipant returns duties that include the soldier.
func (s *Store) ListByParticipant(ctx context.Context, soldierID primitive.ObjectID) ([]models.Duty, error) {
	cur, err := s.c.Find(ctx, bson.M{"participant_ids": soldierID},
		options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Duty
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
