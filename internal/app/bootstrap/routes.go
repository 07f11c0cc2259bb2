// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/weatherhub/internal/app/features/health"
	usersfeature "github.com/dalemusser/weatherhub/internal/app/features/users"
	weatherfeature "github.com/dalemusser/weatherhub/internal/app/features/weather"
	usersvc "github.com/dalemusser/weatherhub/internal/app/services/users"
	weathersvc "github.com/dalemusser/weatherhub/internal/app/services/weather"
	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/reqlog"
	"github.com/dalemusser/weatherhub/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root router.
//
// WAFFLE calls this after config, DB connection, schema setup and Startup
// have completed. Each feature gets its service, which in turn gets a typed
// collection from deps.MongoDatabase.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(reqlog.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// User accounts
	userStore := docstore.New[models.User](deps.MongoDatabase, models.UsersCollection)
	usersHandler := usersfeature.NewHandler(usersvc.New(userStore, logger), appCfg.MaxPageLimit, logger)
	r.Mount("/user", usersfeature.Routes(usersHandler))

	// Weather telemetry and exports
	logStore := docstore.New[models.WeatherLog](deps.MongoDatabase, models.WeatherLogsCollection)
	weatherHandler := weatherfeature.NewHandler(weathersvc.New(logStore, logger), appCfg.MaxPageLimit, logger)
	r.Mount("/api/weather", weatherfeature.Routes(weatherHandler))

	return r, nil
}
