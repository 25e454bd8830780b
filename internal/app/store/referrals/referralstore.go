// internal/app/store/referrals/referralstore.go
package referralstore

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
	return &Store{c: db.Collection("referrals")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Referral, error) {
	var ref models.Referral
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ref); err != nil {
		return models.Referral{}, err
	}
	return ref, nil
}

func (s *Store) Create(ctx context.Context, ref models.Referral) (models.Referral, error) {
	now := time.Now().UTC()
	ref.ID = primitive.NewObjectID()
	ref.CreatedAt = now
	ref.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, ref); err != nil {
		return models.Referral{}, err
	}
	return ref, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListBySoldier returns the soldier's referrals, oldest first.
func (s *Store) ListBySoldier(ctx context.Context, soldierID primitive.ObjectID) ([]models.Referral, error) {
	cur, err := s.c.Find(ctx, bson.M{"soldier_id": soldierID},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Referral
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
