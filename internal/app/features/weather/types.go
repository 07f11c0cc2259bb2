// internal/app/features/weather/types.go
package weather

import (
	weathersvc "github.com/dalemusser/weatherhub/internal/app/services/weather"
	"github.com/dalemusser/weatherhub/internal/app/system/inputval"
)

// Readings without coordinates are rejected.
var createRules = inputval.Rules{
	"timestamp":        {Required: true, Type: inputval.Integer},
	"location_lat":     {Required: true, Type: inputval.String},
	"location_lon":     {Required: true, Type: inputval.String},
	"temperature_c":    {Required: true, Type: inputval.Number},
	"humidity_percent": {Type: inputval.Number},
	"wind_speed_kmh":   {Type: inputval.Number},
	"weather_code":     {Type: inputval.Number},
	"collected_at":     {Required: true, Type: inputval.Integer},
}

var updateRules = inputval.Rules{
	"timestamp":        {Type: inputval.Integer},
	"location_lat":     {NotBlank: true, Type: inputval.String},
	"location_lon":     {NotBlank: true, Type: inputval.String},
	"temperature_c":    {Type: inputval.Number},
	"humidity_percent": {Type: inputval.Number},
	"wind_speed_kmh":   {Type: inputval.Number},
	"weather_code":     {Type: inputval.Number},
	"collected_at":     {Type: inputval.Integer},
}

var plainTextFields = []string{"location_lat", "location_lon"}

type createRequest struct {
	Timestamp       int64    `json:"timestamp"`
	LocationLat     string   `json:"location_lat"`
	LocationLon     string   `json:"location_lon"`
	TemperatureC    float64  `json:"temperature_c"`
	HumidityPercent *float64 `json:"humidity_percent"`
	WindSpeedKmh    *float64 `json:"wind_speed_kmh"`
	WeatherCode     *float64 `json:"weather_code"`
	CollectedAt     int64    `json:"collected_at"`
}

func (req createRequest) input() weathersvc.CreateInput {
	return weathersvc.CreateInput{
		Timestamp:       req.Timestamp,
		LocationLat:     req.LocationLat,
		LocationLon:     req.LocationLon,
		TemperatureC:    req.TemperatureC,
		HumidityPercent: req.HumidityPercent,
		WindSpeedKmh:    req.WindSpeedKmh,
		WeatherCode:     req.WeatherCode,
		CollectedAt:     req.CollectedAt,
	}
}

type updateRequest struct {
	Timestamp       *int64   `json:"timestamp"`
	LocationLat     *string  `json:"location_lat"`
	LocationLon     *string  `json:"location_lon"`
	TemperatureC    *float64 `json:"temperature_c"`
	HumidityPercent *float64 `json:"humidity_percent"`
	WindSpeedKmh    *float64 `json:"wind_speed_kmh"`
	WeatherCode     *float64 `json:"weather_code"`
	CollectedAt     *int64   `json:"collected_at"`
}

func (req updateRequest) input() weathersvc.UpdateInput {
	return weathersvc.UpdateInput{
		Timestamp:       req.Timestamp,
		LocationLat:     req.LocationLat,
		LocationLon:     req.LocationLon,
		TemperatureC:    req.TemperatureC,
		HumidityPercent: req.HumidityPercent,
		WindSpeedKmh:    req.WindSpeedKmh,
		WeatherCode:     req.WeatherCode,
		CollectedAt:     req.CollectedAt,
	}
}
