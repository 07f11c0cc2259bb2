package timeouts

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefaults(t *testing.T) {
	Reset()
	if got := Short(); got != DefaultShort {
		t.Errorf("Short() = %v, want %v", got, DefaultShort)
	}
	if got := Long(); got != DefaultLong {
		t.Errorf("Long() = %v, want %v", got, DefaultLong)
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	Configure(Config{Medium: 42 * time.Second})

	if got := Medium(); got != 42*time.Second {
		t.Errorf("Medium() = %v, want 42s", got)
	}
	if got := Ping(); got != DefaultPing {
		t.Errorf("Ping() = %v, want %v", got, DefaultPing)
	}
}

func TestWithTimeout_LogsDeadline(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	log := zap.New(core)

	ctx, cancel := WithTimeout(context.Background(), time.Millisecond, log, "slow op")
	<-ctx.Done()
	cancel()

	if logs.Len() != 1 {
		t.Fatalf("logged %d entries, want 1", logs.Len())
	}
	if got := logs.All()[0].ContextMap()["operation"]; got != "slow op" {
		t.Errorf("operation = %v, want %q", got, "slow op")
	}
}

func TestWithTimeout_NoLogWhenCanceledEarly(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)

	_, cancel := WithTimeout(context.Background(), time.Hour, zap.New(core), "fast op")
	cancel()

	if logs.Len() != 0 {
		t.Errorf("logged %d entries, want 0", logs.Len())
	}
}
