package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/weatherhub/internal/app/system/timeouts"
)

func TestStartup_ConfiguresTimeouts(t *testing.T) {
	t.Cleanup(timeouts.Reset)

	cfg := validAppConfig()
	cfg.TimeoutLong = 45 * time.Second

	if err := Startup(context.Background(), nil, cfg, DBDeps{}, testLogger()); err != nil {
		t.Fatalf("Startup failed: %v", err)
	}
	if got := timeouts.Long(); got != 45*time.Second {
		t.Errorf("timeouts.Long() = %v, want 45s", got)
	}
	if got := timeouts.Short(); got != 5*time.Second {
		t.Errorf("timeouts.Short() = %v, want 5s", got)
	}
}
