package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/weatherhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user directly, bypassing the service layer.
func (f *Fixtures) CreateUser(ctx context.Context, username, email string) models.User {
	f.t.Helper()

	now := time.Now().UnixMilli()
	u := models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		Password:  "not-a-real-hash",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection(models.UsersCollection).InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateWeatherLog inserts a weather log with the given reading time.
func (f *Fixtures) CreateWeatherLog(ctx context.Context, timestamp int64, tempC float64) models.WeatherLog {
	f.t.Helper()

	l := models.WeatherLog{
		ID:           primitive.NewObjectID(),
		Timestamp:    timestamp,
		LocationLat:  "10.0",
		LocationLon:  "20.0",
		TemperatureC: tempC,
		CollectedAt:  timestamp + 1,
	}
	if _, err := f.db.Collection(models.WeatherLogsCollection).InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create test weather log: %v", err)
	}
	return l
}
