package reqlog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_GeneratesID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	var seen string
	h := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ID(r.Context())
		w.WriteHeader(http.StatusCreated)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user", nil))

	id := rec.Header().Get(Header)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, seen)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/user", entry["path"])
	assert.Equal(t, int64(http.StatusCreated), entry["status"])
}

func TestMiddleware_ReusesInboundID(t *testing.T) {
	h := Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(Header, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(Header))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddleware_ServerErrorsLoggedAsWarn(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	h := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, 1, logs.Len())
}
