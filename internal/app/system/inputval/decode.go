package inputval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrMalformedJSON is returned when a request body is not a JSON object.
var ErrMalformedJSON = errors.New("malformed JSON body")

// MaxBodyBytes bounds how much of a request body Decode reads.
const MaxBodyBytes = 1 << 20

// Decode reads a JSON object from body into a generic map, keeping numbers
// as json.Number. An empty body decodes to an empty map so that Check
// reports the missing required fields.
func Decode(body io.Reader) (map[string]any, error) {
	payload := map[string]any{}
	if body == nil {
		return payload, nil
	}

	raw, err := io.ReadAll(io.LimitReader(body, MaxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if len(raw) > MaxBodyBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrMalformedJSON, MaxBodyBytes)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return payload, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data", ErrMalformedJSON)
	}
	return payload, nil
}

// Bind copies a checked payload into a typed request struct.
func Bind(payload map[string]any, dst any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return nil
}
