// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/weatherhub/internal/app/system/paging"
	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for WeatherHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, max_page_limit, etc.
//   - Environment variables: WEATHERHUB_MONGO_URI, WEATHERHUB_MAX_PAGE_LIMIT, etc.
//   - Command-line flags: --mongo_uri, --max_page_limit, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "weather_db", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "max_page_limit", Default: paging.DefaultMaxLimit, Desc: "Largest accepted page size for lists and exports"},

	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-document store calls"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for paginated list queries"},
	{Name: "timeout_long", Default: "30s", Desc: "Deadline for CSV/XLSX exports"},
}

// LoadConfig loads WAFFLE core config and WeatherHub's app config.
//
// Precedence is flags > env > files > defaults, handled by
// config.LoadWithAppConfig.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "WEATHERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		MaxPageLimit: appValues.Int("max_page_limit"),

		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
		TimeoutLong:   appValues.Duration("timeout_long", timeouts.DefaultLong),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig rejects configurations that would fail later at connect
// time or produce nonsensical paging.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	return validateAppConfig(appCfg)
}

func validateAppConfig(appCfg AppConfig) error {
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	if appCfg.MaxPageLimit < 1 {
		return fmt.Errorf("max_page_limit must be at least 1, got %d", appCfg.MaxPageLimit)
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	for name, d := range map[string]time.Duration{
		"timeout_short":  appCfg.TimeoutShort,
		"timeout_medium": appCfg.TimeoutMedium,
		"timeout_long":   appCfg.TimeoutLong,
	} {
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}
	return nil
}
