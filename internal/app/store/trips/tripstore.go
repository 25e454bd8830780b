// internal/app/store/trips/tripstore.go
package tripstore

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
	return &Store{c: db.Collection("trips")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Trip, error) {
	var t models.Trip
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return models.Trip{}, err
	}
	return t, nil
}

func (s *Store) Create(ctx context.Context, t models.Trip) (models.Trip, error) {
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	if t.Status == "" {
		t.Status = models.TripPlanned
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		return models.Trip{}, err
	}
	return t, nil
}

// Complete marks the trip completed with the actual return time.
func (s *Store) Complete(ctx context.Context, id primitive.ObjectID, returnAt time.Time) error {
	_, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     models.TripCompleted,
		"return_at":  returnAt.UTC(),
		"updated_at": time.Now().UTC(),
	}})
	return err
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByDriver returns the driver's trips, oldest departure first.
func (s *Store) ListByDriver(ctx context.Context, driverID primitive.ObjectID) ([]models.Trip, error) {
	cur, err := s.c.Find(ctx, bson.M{"driver_id": driverID},
		options.Find().SetSort(bson.D{{Key: "departure_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Trip
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LastCompletedByDriver returns the driver's most recent completed trip,
// or mongo.ErrNoDocuments when none exists. The timeline uses its return
// time to infer a rest window.
func (s *Store) LastCompletedByDriver(ctx context.Context, driverID primitive.ObjectID) (models.Trip, error) {
	var t models.Trip
	err := s.c.FindOne(ctx,
		bson.M{"driver_id": driverID, "status": models.TripCompleted, "return_at": bson.M{"$ne": nil}},
		options.FindOne().SetSort(bson.D{{Key: "return_at", Value: -1}}),
	).Decode(&t)
	if err != nil {
		return models.Trip{}, err
	}
	return t, nil
}
