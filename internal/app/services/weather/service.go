// Package weathersvc implements weather log operations and exports.
package weathersvc

import (
	"context"
	"fmt"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/export"
	"github.com/dalemusser/weatherhub/internal/app/system/paging"
	"github.com/dalemusser/weatherhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SheetName is the worksheet name used in XLSX exports.
const SheetName = "WeatherLogs"

// CreateInput is a validated reading.
type CreateInput struct {
	Timestamp       int64
	LocationLat     string
	LocationLon     string
	TemperatureC    float64
	HumidityPercent *float64
	WindSpeedKmh    *float64
	WeatherCode     *float64
	CollectedAt     int64
}

// UpdateInput holds the fields to change. Nil means "leave unchanged".
type UpdateInput struct {
	Timestamp       *int64
	LocationLat     *string
	LocationLon     *string
	TemperatureC    *float64
	HumidityPercent *float64
	WindSpeedKmh    *float64
	WeatherCode     *float64
	CollectedAt     *int64
}

func (in UpdateInput) set() bson.M {
	set := bson.M{}
	if in.Timestamp != nil {
		set["timestamp"] = *in.Timestamp
	}
	if in.LocationLat != nil {
		set["location_lat"] = *in.LocationLat
	}
	if in.LocationLon != nil {
		set["location_lon"] = *in.LocationLon
	}
	if in.TemperatureC != nil {
		set["temperature_c"] = *in.TemperatureC
	}
	if in.HumidityPercent != nil {
		set["humidity_percent"] = *in.HumidityPercent
	}
	if in.WindSpeedKmh != nil {
		set["wind_speed_kmh"] = *in.WindSpeedKmh
	}
	if in.WeatherCode != nil {
		set["weather_code"] = *in.WeatherCode
	}
	if in.CollectedAt != nil {
		set["collected_at"] = *in.CollectedAt
	}
	return set
}

type Service struct {
	store docstore.Store[models.WeatherLog]
	log   *zap.Logger
}

func New(store docstore.Store[models.WeatherLog], log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

// Create stores a reading.
func (s *Service) Create(ctx context.Context, in CreateInput) (*models.WeatherLog, error) {
	l := models.WeatherLog{
		Timestamp:       in.Timestamp,
		LocationLat:     in.LocationLat,
		LocationLon:     in.LocationLon,
		TemperatureC:    in.TemperatureC,
		HumidityPercent: in.HumidityPercent,
		WindSpeedKmh:    in.WindSpeedKmh,
		WeatherCode:     in.WeatherCode,
		CollectedAt:     in.CollectedAt,
	}
	id, err := s.store.Insert(ctx, &l)
	if err != nil {
		return nil, fmt.Errorf("create weather log: %w", err)
	}
	l.ID = id
	return &l, nil
}

// GetAll returns one page of readings, most recent timestamp first.
func (s *Service) GetAll(ctx context.Context, p paging.Params) (paging.Page[models.WeatherLog], error) {
	var (
		rows  []models.WeatherLog
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.page(gctx, p)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.Count(gctx, bson.M{})
		return err
	})
	if err := g.Wait(); err != nil {
		return paging.Page[models.WeatherLog]{}, fmt.Errorf("list weather logs: %w", err)
	}

	return paging.NewPage(rows, total, p), nil
}

func (s *Service) page(ctx context.Context, p paging.Params) ([]models.WeatherLog, error) {
	return s.store.FindPage(ctx, bson.M{}, "timestamp", -1, p.Skip(), int64(p.Limit))
}

// GetByID returns the reading or (nil, nil) when absent.
func (s *Service) GetByID(ctx context.Context, id primitive.ObjectID) (*models.WeatherLog, error) {
	l, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get weather log %s: %w", id.Hex(), err)
	}
	return l, nil
}

// Update applies the supplied fields. Returns (nil, nil) when absent.
func (s *Service) Update(ctx context.Context, id primitive.ObjectID, in UpdateInput) (*models.WeatherLog, error) {
	l, err := s.store.UpdateByID(ctx, id, in.set())
	if err != nil {
		return nil, fmt.Errorf("update weather log %s: %w", id.Hex(), err)
	}
	return l, nil
}

// Delete removes the reading. Deleting a missing reading succeeds.
func (s *Service) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.store.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete weather log %s: %w", id.Hex(), err)
	}
	return nil
}

// ExportCSV renders one page of readings as CSV. An empty page yields only
// the header row.
func (s *Service) ExportCSV(ctx context.Context, p paging.Params) ([]byte, error) {
	t, err := s.table(ctx, p)
	if err != nil {
		return nil, err
	}
	out, err := export.CSV(t)
	if err != nil {
		s.log.Error("csv export failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

// ExportXLSX renders the same page and columns as ExportCSV into a
// single-sheet workbook.
func (s *Service) ExportXLSX(ctx context.Context, p paging.Params) ([]byte, error) {
	t, err := s.table(ctx, p)
	if err != nil {
		return nil, err
	}
	out, err := export.XLSX(SheetName, t)
	if err != nil {
		s.log.Error("xlsx export failed", zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (s *Service) table(ctx context.Context, p paging.Params) (export.Table, error) {
	rows, err := s.page(ctx, p)
	if err != nil {
		return export.Table{}, fmt.Errorf("export weather logs: %w", err)
	}
	t := export.Table{Header: models.WeatherLogFields, Rows: make([][]any, 0, len(rows))}
	for _, l := range rows {
		t.Rows = append(t.Rows, row(l))
	}
	return t, nil
}

// row lays out a reading in models.WeatherLogFields order.
func row(l models.WeatherLog) []any {
	return []any{
		l.ID.Hex(),
		l.Timestamp,
		l.LocationLat,
		l.LocationLon,
		l.TemperatureC,
		optional(l.HumidityPercent),
		optional(l.WindSpeedKmh),
		optional(l.WeatherCode),
		l.CollectedAt,
	}
}

func optional(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
