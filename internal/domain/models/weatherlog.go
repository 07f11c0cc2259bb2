// internal/domain/models/weatherlog.go
package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WeatherLogsCollection is the MongoDB collection holding sensor readings.
const WeatherLogsCollection = "weather_logs"

// WeatherLog is a single timestamped sensor reading.
//
// Timestamp is the reading time and CollectedAt the ingestion time, both
// epoch milliseconds. Optional measurements are nil when the sensor did
// not report them.
type WeatherLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Timestamp       int64              `bson:"timestamp" json:"timestamp"`
	LocationLat     string             `bson:"location_lat" json:"location_lat"`
	LocationLon     string             `bson:"location_lon" json:"location_lon"`
	TemperatureC    float64            `bson:"temperature_c" json:"temperature_c"`
	HumidityPercent *float64           `bson:"humidity_percent,omitempty" json:"humidity_percent,omitempty"`
	WindSpeedKmh    *float64           `bson:"wind_speed_kmh,omitempty" json:"wind_speed_kmh,omitempty"`
	WeatherCode     *float64           `bson:"weather_code,omitempty" json:"weather_code,omitempty"`
	CollectedAt     int64              `bson:"collected_at" json:"collected_at"`
}

// WeatherLogIndexes declares the indexes for the weather_logs collection.
var WeatherLogIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetName("idx_weather_logs_timestamp"),
	},
	{
		Keys:    bson.D{{Key: "collected_at", Value: 1}},
		Options: options.Index().SetName("idx_weather_logs_collected_at"),
	},
}

// WeatherLogFields lists the exported column names in declaration order.
var WeatherLogFields = []string{
	"_id",
	"timestamp",
	"location_lat",
	"location_lon",
	"temperature_c",
	"humidity_percent",
	"wind_speed_kmh",
	"weather_code",
	"collected_at",
}

// WeatherLogDTO is the client-facing shape of a WeatherLog.
type WeatherLogDTO struct {
	ID              string   `json:"_id"`
	Timestamp       int64    `json:"timestamp"`
	LocationLat     string   `json:"location_lat"`
	LocationLon     string   `json:"location_lon"`
	TemperatureC    float64  `json:"temperature_c"`
	HumidityPercent *float64 `json:"humidity_percent,omitempty"`
	WindSpeedKmh    *float64 `json:"wind_speed_kmh,omitempty"`
	WeatherCode     *float64 `json:"weather_code,omitempty"`
	CollectedAt     int64    `json:"collected_at"`
}

// DTO maps the stored record to its client-facing shape.
func (l WeatherLog) DTO() WeatherLogDTO {
	return WeatherLogDTO{
		ID:              l.ID.Hex(),
		Timestamp:       l.Timestamp,
		LocationLat:     l.LocationLat,
		LocationLon:     l.LocationLon,
		TemperatureC:    l.TemperatureC,
		HumidityPercent: l.HumidityPercent,
		WindSpeedKmh:    l.WindSpeedKmh,
		WeatherCode:     l.WeatherCode,
		CollectedAt:     l.CollectedAt,
	}
}
