// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds WeatherHub's app-level configuration.
//
// WAFFLE's CoreConfig covers ports, TLS, logging and CORS; everything here
// is specific to this service. Values come from flags, WEATHERHUB_* env
// variables, config files or the defaults in appConfigKeys.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // e.g. mongodb://localhost:27017
	MongoDatabase    string // default weather_db
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// MaxPageLimit caps the limit query parameter on list and export endpoints.
	MaxPageLimit int

	// Handler deadlines for store calls (see system/timeouts).
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
