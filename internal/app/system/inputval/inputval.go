// Package inputval validates inbound JSON payloads against a declarative
// constraint table before they reach the service layer.
//
// Each DTO declares a Rules table mapping JSON field name to a Constraint.
// Check evaluates every field and reports all violations at once, so a
// rejected request never causes partial work.
package inputval

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Type is the JSON type a field must carry.
type Type string

const (
	String  Type = "string"
	Number  Type = "number"
	Integer Type = "integer"
)

// Constraint describes what a single field must satisfy.
//
// Format is an optional go-playground/validator tag (for example "email")
// applied to string values after the type check passes. NotBlank rejects
// whitespace-only strings on optional fields; required strings are always
// checked.
type Constraint struct {
	Required bool
	NotBlank bool
	Type     Type
	Format   string
}

// Rules is the constraint table for one DTO.
type Rules map[string]Constraint

// FieldError is one violated field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed its constraint.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.FieldNames(), ", ")
}

// FieldNames returns the offending field names in sorted order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return names
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Check validates payload against rules. It returns nil when every
// constraint holds, or a *ValidationError naming each violated field.
// Fields not mentioned in rules are ignored.
//
// Numbers are expected as json.Number (decode with UseNumber) but float64
// values are accepted too.
func Check(payload map[string]any, rules Rules) error {
	var errs []FieldError

	for field, c := range rules {
		v, present := payload[field]
		if !present || v == nil {
			if c.Required {
				errs = append(errs, FieldError{Field: field, Message: field + " is required"})
			}
			continue
		}
		if msg := checkValue(field, v, c); msg != "" {
			errs = append(errs, FieldError{Field: field, Message: msg})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Field < errs[j].Field })
	return &ValidationError{Fields: errs}
}

func checkValue(field string, v any, c Constraint) string {
	switch c.Type {
	case String:
		s, ok := v.(string)
		if !ok {
			return field + " must be a string"
		}
		if (c.Required || c.NotBlank) && strings.TrimSpace(s) == "" {
			return field + " should not be empty"
		}
		if c.Format != "" {
			if err := engine().Var(s, c.Format); err != nil {
				return formatMessage(field, c.Format)
			}
		}
	case Number:
		if !isNumber(v) {
			return field + " must be a number"
		}
	case Integer:
		if !isInteger(v) {
			return field + " must be an integer"
		}
	}
	return ""
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case json.Number:
		_, err := n.Float64()
		return err == nil
	case float64, float32, int, int32, int64:
		return true
	}
	return false
}

func isInteger(v any) bool {
	switch n := v.(type) {
	case json.Number:
		_, err := n.Int64()
		return err == nil
	case float64:
		return n == float64(int64(n))
	case int, int32, int64:
		return true
	}
	return false
}

func formatMessage(field, format string) string {
	switch format {
	case "email":
		return field + " must be an email"
	default:
		return fmt.Sprintf("%s must satisfy %q", field, format)
	}
}
