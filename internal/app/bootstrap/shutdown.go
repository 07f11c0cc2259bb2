// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown disconnects the MongoDB client.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.MongoClient == nil {
		return nil
	}
	logger.Info("disconnecting MongoDB client")
	if err := deps.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("MongoDB disconnect failed", zap.Error(err))
		return err
	}
	return nil
}
