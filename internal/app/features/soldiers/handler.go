// internal/app/features/soldiers/handler.go
package soldiers

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	auditstore "github.com/unitops/rollcall/internal/app/store/audit"
	frameworkstore "github.com/unitops/rollcall/internal/app/store/frameworks"
	soldierstore "github.com/unitops/rollcall/internal/app/store/soldiers"
)

// Handler is the feature-level entry point for Soldiers.
type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	Soldiers   *soldierstore.Store
	Frameworks *frameworkstore.Store
	Audit      *auditstore.Store
}

// NewHandler constructs a new Soldiers handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		Soldiers:   soldierstore.New(db),
		Frameworks: frameworkstore.New(db),
		Audit:      auditstore.New(db),
	}
}
