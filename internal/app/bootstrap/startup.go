// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"github.com/unitops/rollcall/internal/app/resources"
	userstore "github.com/unitops/rollcall/internal/app/store/users"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built. It loads
// the shared templates and creates the bootstrap admin account when one is
// configured and missing.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	users := userstore.New(deps.MongoDatabase)
	if err := users.EnsureAdmin(ctx, appCfg.AdminEmail, appCfg.AdminPassword); err != nil {
		return fmt.Errorf("ensure admin account: %w", err)
	}
	if appCfg.AdminEmail != "" {
		logger.Info("bootstrap admin ensured", zap.String("email", appCfg.AdminEmail))
	}
	return nil
}
