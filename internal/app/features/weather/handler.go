// internal/app/features/weather/handler.go
package weather

import (
	weathersvc "github.com/dalemusser/weatherhub/internal/app/services/weather"
	"go.uber.org/zap"
)

const notFoundMessage = "Weather log not found"

// Export file names offered to the browser.
const (
	csvFilename  = "weather_logs.csv"
	xlsxFilename = "weather_logs.xlsx"
)

// Handler is the feature-level entry point for weather logs.
type Handler struct {
	Logs     *weathersvc.Service
	MaxLimit int
	Log      *zap.Logger
}

func NewHandler(svc *weathersvc.Service, maxLimit int, logger *zap.Logger) *Handler {
	return &Handler{
		Logs:     svc,
		MaxLimit: maxLimit,
		Log:      logger,
	}
}
