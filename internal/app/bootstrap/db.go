// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and bundles it into DBDeps.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))
	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the queries rely on. All creations are
// idempotent; Mongo ignores an existing index with the same spec.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	type spec struct {
		collection string
		model      mongo.IndexModel
	}
	specs := []spec{
		{"soldiers", mongo.IndexModel{Keys: bson.D{{Key: "framework_id", Value: 1}}}},
		{"soldiers", mongo.IndexModel{Keys: bson.D{{Key: "name_ci", Value: 1}}}},
		{"soldiers", mongo.IndexModel{
			Keys:    bson.D{{Key: "personal_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"frameworks", mongo.IndexModel{Keys: bson.D{{Key: "parent_id", Value: 1}}}},
		{"frameworks", mongo.IndexModel{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"audit_events", mongo.IndexModel{Keys: bson.D{{Key: "soldier_id", Value: 1}, {Key: "at", Value: -1}}}},
		{"audit_events", mongo.IndexModel{Keys: bson.D{{Key: "at", Value: -1}}}},
		{"activities", mongo.IndexModel{Keys: bson.D{{Key: "participant_ids", Value: 1}}}},
		{"duties", mongo.IndexModel{Keys: bson.D{{Key: "participant_ids", Value: 1}}}},
		{"referrals", mongo.IndexModel{Keys: bson.D{{Key: "soldier_id", Value: 1}}}},
		{"trips", mongo.IndexModel{Keys: bson.D{{Key: "driver_id", Value: 1}, {Key: "return_at", Value: -1}}}},
	}

	for _, s := range specs {
		if _, err := db.Collection(s.collection).Indexes().CreateOne(ctx, s.model); err != nil {
			return fmt.Errorf("create index on %s: %w", s.collection, err)
		}
	}

	logger.Info("database indexes ensured")
	return nil
}
