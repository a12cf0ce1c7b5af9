package config

import "time"

const (
	defaultSessionIssuer     = "go-ads-board"
	defaultSessionDuration   = 24 * time.Hour
	defaultSessionCookieName = "session"
	defaultPasswordHashCost  = 10
	defaultLogLevel          = "debug"
	defaultRequestTimeout    = 30 * time.Second
	defaultMaxUploadSize     = 5 << 20
	defaultDBDriver          = DriverPostgres
	defaultMaxOpenConns      = 10
	defaultMaxIdleConns      = 4
	defaultConnMaxLifetime   = 30 * time.Minute
)

// Supported database/sql driver names.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaults returns the configuration used for every field left unset by
// all other sources.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SessionIssuer:     defaultSessionIssuer,
			SessionDuration:   defaultSessionDuration,
			SessionCookieName: defaultSessionCookieName,
			PasswordHashCost:  defaultPasswordHashCost,
			LogLevel:          defaultLogLevel,
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
			MaxUploadSize:  defaultMaxUploadSize,
		},
		Storage: Storage{
			DB: DB{
				Driver:          defaultDBDriver,
				MaxOpenConns:    defaultMaxOpenConns,
				MaxIdleConns:    defaultMaxIdleConns,
				ConnMaxLifetime: defaultConnMaxLifetime,
			},
		},
	}
}
