package inputval

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		wantLen int
	}{
		{"empty body", "", false, 0},
		{"whitespace", "  \n", false, 0},
		{"object", `{"a":1,"b":"x"}`, false, 2},
		{"array", `[1,2]`, true, 0},
		{"broken", `{"a":`, true, 0},
		{"trailing", `{"a":1}{"b":2}`, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.body))
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedJSON) {
					t.Fatalf("Decode() error = %v, want ErrMalformedJSON", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Errorf("Decode() len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestDecode_KeepsNumbers(t *testing.T) {
	got, err := Decode(strings.NewReader(`{"timestamp":1700000000123}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	n, ok := got["timestamp"].(json.Number)
	if !ok {
		t.Fatalf("timestamp is %T, want json.Number", got["timestamp"])
	}
	if v, _ := n.Int64(); v != 1700000000123 {
		t.Errorf("timestamp = %d, want 1700000000123", v)
	}
}

func TestDecode_TooLarge(t *testing.T) {
	body := `{"a":"` + strings.Repeat("x", MaxBodyBytes) + `"}`
	if _, err := Decode(strings.NewReader(body)); !errors.Is(err, ErrMalformedJSON) {
		t.Errorf("Decode() error = %v, want ErrMalformedJSON", err)
	}
}

func TestBind(t *testing.T) {
	payload, err := Decode(strings.NewReader(`{"name":"x","count":3,"extra":true}`))
	if err != nil {
		t.Fatal(err)
	}
	var dst struct {
		Name  string `json:"name"`
		Count int64  `json:"count"`
	}
	if err := Bind(payload, &dst); err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if dst.Name != "x" || dst.Count != 3 {
		t.Errorf("Bind() = %+v", dst)
	}
}
