// internal/app/features/reports/handler.go
package reports

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	frameworkstore "github.com/unitops/rollcall/internal/app/store/frameworks"
	soldierstore "github.com/unitops/rollcall/internal/app/store/soldiers"
)

// Handler is the feature-level entry point for Reports.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Soldiers   *soldierstore.Store
	Frameworks *frameworkstore.Store
}

// NewHandler constructs a new Reports handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Soldiers:   soldierstore.New(db),
		Frameworks: frameworkstore.New(db),
	}
}
