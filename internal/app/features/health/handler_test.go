package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/weatherhub/internal/app/features/health"
	"github.com/dalemusser/weatherhub/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type healthBody struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message"`
}

func serve(t *testing.T, h *health.Handler) (*httptest.ResponseRecorder, healthBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	var body healthBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, body
}

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(db.Client(), zap.NewNop())

	rec, body := serve(t, handler)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
	if body.Status != "ok" {
		t.Errorf("status: got %q, want %q", body.Status, "ok")
	}
	if body.Database != "connected" {
		t.Errorf("database: got %q, want %q", body.Database, "connected")
	}
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context, *readpref.ReadPref) error {
	return errors.New("server selection error: db.internal.example:27017, auth failed for user weather")
}

func TestServe_DatabaseDown(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	handler := health.NewHandler(failingPinger{}, zap.New(core))

	rec, body := serve(t, handler)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	if body.Status != "error" {
		t.Errorf("status: got %q, want %q", body.Status, "error")
	}
	if body.Message != "Database unavailable" {
		t.Errorf("message: got %q", body.Message)
	}

	if strings.Contains(rec.Body.String(), "db.internal.example") || strings.Contains(rec.Body.String(), "\"error\":") {
		t.Errorf("driver error leaked into body: %s", rec.Body.String())
	}
	if logs.FilterMessage("health-check: mongo ping failed").Len() != 1 {
		t.Errorf("expected ping failure to be logged, got %d entries", logs.Len())
	}
}
