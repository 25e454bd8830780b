// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	auditlogfeature "github.com/unitops/rollcall/internal/app/features/auditlog"
	dashboardfeature "github.com/unitops/rollcall/internal/app/features/dashboard"
	errorsfeature "github.com/unitops/rollcall/internal/app/features/errors"
	frameworksfeature "github.com/unitops/rollcall/internal/app/features/frameworks"
	healthfeature "github.com/unitops/rollcall/internal/app/features/health"
	homefeature "github.com/unitops/rollcall/internal/app/features/home"
	loginfeature "github.com/unitops/rollcall/internal/app/features/login"
	logoutfeature "github.com/unitops/rollcall/internal/app/features/logout"
	reportsfeature "github.com/unitops/rollcall/internal/app/features/reports"
	soldiersfeature "github.com/unitops/rollcall/internal/app/features/soldiers"
	timelinefeature "github.com/unitops/rollcall/internal/app/features/timeline"
	"github.com/unitops/rollcall/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. It creates the session manager, boots the
// template engine, and mounts the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli).
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages.
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication.
	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Error pages.
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)

	// Application areas.
	dashboardHandler := dashboardfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	frameworksHandler := frameworksfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/frameworks", frameworksfeature.Routes(frameworksHandler, sessionMgr))

	soldiersHandler := soldiersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/soldiers", soldiersfeature.Routes(soldiersHandler, sessionMgr))

	reportsHandler := reportsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/reports", reportsfeature.Routes(reportsHandler, sessionMgr))

	timelineHandler := timelinefeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/timeline", timelinefeature.Routes(timelineHandler, sessionMgr))

	auditHandler := auditlogfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/audit", auditlogfeature.Routes(auditHandler, sessionMgr))

	return r, nil
}
