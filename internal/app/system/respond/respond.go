// Package respond writes JSON and file responses and maps domain errors to
// HTTP status codes.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dalemusser/weatherhub/internal/app/store/docstore"
	"github.com/dalemusser/weatherhub/internal/app/system/export"
	"github.com/dalemusser/weatherhub/internal/app/system/inputval"
	"go.uber.org/zap"
)

// MessageBody is the shape of every non-data response.
type MessageBody struct {
	Message string                `json:"message"`
	Fields  []inputval.FieldError `json:"fields,omitempty"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, MessageBody{Message: msg})
}

// NoContent writes 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// File sends body as a download named filename.
func File(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// Error maps err to a status and message:
//
//	*inputval.ValidationError       400 with per-field messages
//	inputval.ErrMalformedJSON       400
//	docstore.ErrConstraintViolation 409
//	export.ErrExport                500
//	anything else                   500
//
// Server-side failures are logged; client errors are not.
func Error(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	var verr *inputval.ValidationError
	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusBadRequest, MessageBody{Message: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, inputval.ErrMalformedJSON):
		Message(w, http.StatusBadRequest, "request body must be a JSON object")
	case errors.Is(err, docstore.ErrConstraintViolation):
		Message(w, http.StatusConflict, conflictMessage(err))
	case errors.Is(err, export.ErrExport):
		logError(log, op, err)
		Message(w, http.StatusInternalServerError, "export failed")
	default:
		logError(log, op, err)
		Message(w, http.StatusInternalServerError, "internal server error")
	}
}

func conflictMessage(err error) string {
	var ce *docstore.ConstraintError
	if errors.As(err, &ce) {
		switch ce.Index {
		case "uniq_users_username", "username":
			return "username already exists"
		case "uniq_users_email", "email":
			return "email already exists"
		}
	}
	return "record already exists"
}

func logError(log *zap.Logger, op string, err error) {
	if log == nil {
		return
	}
	log.Error(op+" failed", zap.Error(err))
}
