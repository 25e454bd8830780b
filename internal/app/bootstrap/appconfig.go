// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging); AppConfig is everything
// specific to RollCall.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions
	SessionDomain string // Cookie domain (blank means current host)

	// Admin account bootstrap: when both are set and no account with the
	// email exists, Startup creates an admin user. Meant for first-run
	// and development setups.
	AdminEmail    string
	AdminPassword string

	// BaseURL is the externally visible URL of this deployment.
	BaseURL string // e.g., "https://rollcall.example.com" or "http://localhost:3000"
}
