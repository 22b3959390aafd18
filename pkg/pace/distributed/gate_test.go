package distributed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/gopace/internal/testutil"
	gperrors "github.com/vnykmshr/gopace/pkg/common/errors"
)

func newTestGate(t *testing.T, config Config) (Gate, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	config.Redis = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	gate, err := NewGateSafe(config)
	testutil.AssertNoError(t, err)
	return gate, mr
}

func TestNewGateSafe(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid", Config{Redis: client, Window: time.Second}, false},
		{"nil redis", Config{Window: time.Second}, true},
		{"zero window", Config{Redis: client}, true},
		{"negative window", Config{Redis: client, Window: -time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, err := NewGateSafe(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error for invalid configuration")
				}
				if !errors.Is(err, gperrors.ErrInvalidArgument) {
					t.Errorf("error should wrap ErrInvalidArgument, got %v", err)
				}
			} else {
				testutil.AssertNoError(t, err)
				if gate == nil {
					t.Error("expected a gate")
				}
			}
		})
	}
}

func TestTryClaimsWindow(t *testing.T) {
	gate, mr := newTestGate(t, Config{Window: time.Second, InstanceID: "instance-a"})
	ctx := context.Background()

	claimed, err := gate.Try(ctx, "cache-rebuild")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, claimed, true)

	// Second claim within the window is suppressed.
	claimed, err = gate.Try(ctx, "cache-rebuild")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, claimed, false)

	holder, err := gate.Holder(ctx, "cache-rebuild")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, holder, "instance-a")

	// A different key is an independent window.
	claimed, err = gate.Try(ctx, "report-upload")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, claimed, true)

	// Window expiry restores claimability.
	mr.FastForward(1100 * time.Millisecond)
	claimed, err = gate.Try(ctx, "cache-rebuild")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, claimed, true)
}

func TestHoldPostponesExpiry(t *testing.T) {
	gate, mr := newTestGate(t, Config{Window: time.Second})
	ctx := context.Background()

	testutil.AssertNoError(t, gate.Hold(ctx, "settle"))

	mr.FastForward(600 * time.Millisecond)
	testutil.AssertNoError(t, gate.Hold(ctx, "settle")) // postpone

	// Past the original expiry the window is still active.
	mr.FastForward(600 * time.Millisecond)
	claimed, err := gate.Try(ctx, "settle")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, claimed, false)

	remaining, err := gate.Remaining(ctx, "settle")
	testutil.AssertNoError(t, err)
	if remaining <= 0 {
		t.Errorf("expected an active window, got remaining=%v", remaining)
	}

	mr.FastForward(500 * time.Millisecond)
	remaining, err = gate.Remaining(ctx, "settle")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, remaining, time.Duration(0))
}

func TestClearReleasesWindow(t *testing.T) {
	gate, _ := newTestGate(t, Config{Window: time.Minute})
	ctx := context.Background()

	claimed, err := gate.Try(ctx, "deploy")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, claimed, true)

	testutil.AssertNoError(t, gate.Clear(ctx, "deploy"))

	claimed, err = gate.Try(ctx, "deploy")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, claimed, true)
}

func TestRemainingWithoutWindow(t *testing.T) {
	gate, _ := newTestGate(t, Config{Window: time.Minute})

	remaining, err := gate.Remaining(context.Background(), "missing")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, remaining, time.Duration(0))

	holder, err := gate.Holder(context.Background(), "missing")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, holder, "")
}

func TestFailurePolicy(t *testing.T) {
	t.Run("fail closed by default", func(t *testing.T) {
		gate, mr := newTestGate(t, Config{Window: time.Second})
		mr.Close()

		claimed, err := gate.Try(context.Background(), "any")
		testutil.AssertError(t, err)
		testutil.AssertEqual(t, claimed, false)
	})

	t.Run("fail open when configured", func(t *testing.T) {
		gate, mr := newTestGate(t, Config{Window: time.Second, FailOpen: true})
		mr.Close()

		claimed, err := gate.Try(context.Background(), "any")
		testutil.AssertError(t, err)
		testutil.AssertEqual(t, claimed, true)
	})
}

func TestClosedGate(t *testing.T) {
	gate, _ := newTestGate(t, Config{Window: time.Second, FailOpen: true})
	ctx := context.Background()

	testutil.AssertNoError(t, gate.Close())

	// Closing is a local decision, so even a fail-open gate suppresses.
	claimed, err := gate.Try(ctx, "any")
	testutil.AssertEqual(t, claimed, false)
	if !errors.Is(err, gperrors.ErrClosed) {
		t.Errorf("Try error should wrap ErrClosed, got %v", err)
	}

	if err := gate.Hold(ctx, "any"); !errors.Is(err, gperrors.ErrClosed) {
		t.Errorf("Hold error should wrap ErrClosed, got %v", err)
	}
	if _, err := gate.Remaining(ctx, "any"); !errors.Is(err, gperrors.ErrClosed) {
		t.Errorf("Remaining error should wrap ErrClosed, got %v", err)
	}
	if _, err := gate.Holder(ctx, "any"); !errors.Is(err, gperrors.ErrClosed) {
		t.Errorf("Holder error should wrap ErrClosed, got %v", err)
	}
	if err := gate.Clear(ctx, "any"); !errors.Is(err, gperrors.ErrClosed) {
		t.Errorf("Clear error should wrap ErrClosed, got %v", err)
	}

	// Close is idempotent.
	testutil.AssertNoError(t, gate.Close())
}

func TestMetricsGate(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	gate, err := NewGateWithMetrics(Config{Redis: client, Window: time.Second}, "test")
	testutil.AssertNoError(t, err)

	ctx := context.Background()
	claimed, err := gate.Try(ctx, "job")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, claimed, true)

	claimed, err = gate.Try(ctx, "job")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, claimed, false)

	mg, ok := gate.(*MetricsGate)
	if !ok {
		t.Fatal("expected a MetricsGate")
	}
	if !mg.MetricsEnabled() {
		t.Error("metrics should be enabled")
	}

	mg.DisableMetrics()
	if mg.MetricsEnabled() {
		t.Error("metrics should be disabled")
	}
}
