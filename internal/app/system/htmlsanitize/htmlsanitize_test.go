package htmlsanitize_test

import (
	"testing"

	"github.com/dalemusser/weatherhub/internal/app/system/htmlsanitize"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "alice", "alice"},
		{"bold", "<b>alice</b>", "alice"},
		{"script content dropped", "<script>alert('xss')</script>bob", "bob"},
		{"ampersand kept", "Tom & Jerry", "Tom & Jerry"},
		{"coordinates", "40.7128", "40.7128"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := htmlsanitize.StripTags(tt.input)
			if got != tt.want {
				t.Errorf("StripTags(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"no tags here", true},
		{"a > b", true},
		{"<i>x</i>", false},
	}
	for _, tt := range tests {
		if got := htmlsanitize.IsPlainText(tt.input); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStripFields(t *testing.T) {
	payload := map[string]any{
		"username":      "<em>carol</em>",
		"email":         "<em>left@alone.com</em>",
		"temperature_c": 21.5,
	}

	htmlsanitize.StripFields(payload, "username", "temperature_c", "missing")

	if payload["username"] != "carol" {
		t.Errorf("username = %v, want carol", payload["username"])
	}
	if payload["email"] != "<em>left@alone.com</em>" {
		t.Errorf("email should be untouched, got %v", payload["email"])
	}
	if payload["temperature_c"] != 21.5 {
		t.Errorf("temperature_c should be untouched, got %v", payload["temperature_c"])
	}
}
