package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/export"
	"github.com/dalemusser/weatherhub/internal/app/system/inputval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestError_Mapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation",
			err:         &inputval.ValidationError{Fields: []inputval.FieldError{{Field: "email", Message: "email must be an email"}}},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "validation failed: email",
		},
		{
			name:        "malformed json",
			err:         fmt.Errorf("%w: eof", inputval.ErrMalformedJSON),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "request body must be a JSON object",
		},
		{
			name:        "duplicate username",
			err:         fmt.Errorf("create user: %w", &docstore.ConstraintError{Index: "uniq_users_username"}),
			wantStatus:  http.StatusConflict,
			wantMessage: "username already exists",
		},
		{
			name:        "duplicate unknown index",
			err:         docstore.ErrConstraintViolation,
			wantStatus:  http.StatusConflict,
			wantMessage: "record already exists",
		},
		{
			name:        "export",
			err:         fmt.Errorf("%w: boom", export.ErrExport),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "export failed",
		},
		{
			name:        "other",
			err:         errors.New("socket closed"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, zap.NewNop(), "test", tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body MessageBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, nil, "test", &inputval.ValidationError{Fields: []inputval.FieldError{
		{Field: "password", Message: "password is required"},
		{Field: "username", Message: "username is required"},
	}})

	var body MessageBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Fields, 2)
	assert.Equal(t, "password", body.Fields[0].Field)
	assert.Equal(t, "username", body.Fields[1].Field)
}

func TestFile(t *testing.T) {
	rec := httptest.NewRecorder()
	File(rec, export.CSVContentType, "weather_logs.csv", []byte("a,b\n"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="weather_logs.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "a,b\n", rec.Body.String())
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	NoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
