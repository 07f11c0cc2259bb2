package validators_test

import (
	"testing"

	"github.com/dalemusser/weatherhub/internal/app/system/validators"
	"github.com/dalemusser/weatherhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}
}

func TestEnsureAll_CreatesCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	collMap := make(map[string]bool)
	for _, name := range names {
		collMap[name] = true
	}
	for _, expected := range []string{"users", "weather_logs"} {
		if !collMap[expected] {
			t.Errorf("expected collection %q to exist", expected)
		}
	}
}

func TestUsersValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err := db.Collection("users").InsertOne(ctx, bson.M{"username": "only-a-name"})
	if err == nil {
		t.Error("expected validation error when inserting user without required fields")
	}

	_, err = db.Collection("users").InsertOne(ctx, bson.M{
		"username":   "alice",
		"email":      "alice@example.com",
		"password":   "$2a$12$hash",
		"created_at": int64(1000),
		"updated_at": int64(1000),
	})
	if err != nil {
		t.Errorf("Insert valid user failed: %v", err)
	}
}

func TestWeatherLogsValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	_, err := db.Collection("weather_logs").InsertOne(ctx, bson.M{
		"timestamp":    int64(1000),
		"location_lat": "10.0",
	})
	if err == nil {
		t.Error("expected validation error when inserting log without required fields")
	}

	_, err = db.Collection("weather_logs").InsertOne(ctx, bson.M{
		"timestamp":     int64(1000),
		"location_lat":  "10.0",
		"location_lon":  "20.0",
		"temperature_c": 25.5,
		"collected_at":  int64(1001),
	})
	if err != nil {
		t.Errorf("Insert valid log failed: %v", err)
	}
}
