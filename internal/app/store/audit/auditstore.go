// internal/app/store/audit/auditstore.go
package auditstore

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
	return &Store{c: db.Collection("audit_events")}
}

// Insert records one audit event. At is stamped here so callers cannot
// backdate entries.
func (s *Store) Insert(ctx context.Context, e models.AuditEvent) error {
	e.ID = primitive.NewObjectID()
	e.At = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, e)
	return err
}

// ListRecent returns the newest events, capped at limit.
func (s *Store) ListRecent(ctx context.Context, limit int64) ([]models.AuditEvent, error) {
	return s.list(ctx, bson.M{}, limit)
}

// ListBySoldier returns the newest events for one soldier.
func (s *Store) ListBySoldier(ctx context.Context, soldierID primitive.ObjectID, limit int64) ([]models.AuditEvent, error) {
	return s.list(ctx, bson.M{"soldier_id": soldierID}, limit)
}

func (s *Store) list(ctx context.Context, filter bson.M, limit int64) ([]models.AuditEvent, error) {
	cur, err := s.c.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.AuditEvent
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
