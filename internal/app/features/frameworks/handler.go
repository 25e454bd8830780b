// internal/app/features/frameworks/handler.go
package frameworks

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	frameworkstore "github.com/unitops/rollcall/internal/app/store/frameworks"
	soldierstore "github.com/unitops/rollcall/internal/app/store/soldiers"
)

// Handler is the feature-level entry point for Frameworks.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Frameworks *frameworkstore.Store
	Soldiers   *soldierstore.Store
}

// NewHandler constructs a new Frameworks handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Frameworks: frameworkstore.New(db),
		Soldiers:   soldierstore.New(db),
	}
}
