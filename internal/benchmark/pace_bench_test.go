package benchmark

import (
	"testing"
	"time"

	"github.com/vnykmshr/gopace/pkg/pace/debounce"
	"github.com/vnykmshr/gopace/pkg/pace/throttle"
)

// Cross-strategy benchmarks comparing the per-call overhead of the pacing
// wrappers. Waits are set far beyond the benchmark duration so the cost
// measured is bookkeeping, not invocation.

func noop(contextVal any, args ...any) any { return nil }

// BenchmarkThrottleSuppressedCall measures a call absorbed by a pending window.
func BenchmarkThrottleSuppressedCall(b *testing.B) {
	limiter, err := throttle.NewSafe(noop, time.Hour)
	if err != nil {
		b.Fatal(err)
	}
	limiter.Call("warm")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		limiter.Call("payload")
	}

	b.StopTimer()
	limiter.Stop()
}

// BenchmarkDebounceReset measures a call that cancels and re-arms the timer.
func BenchmarkDebounceReset(b *testing.B) {
	limiter, err := debounce.NewSafe(noop, time.Hour)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		limiter.Call("payload")
	}

	b.StopTimer()
	limiter.Stop()
}

// BenchmarkThrottleParallel measures contended suppressed calls.
func BenchmarkThrottleParallel(b *testing.B) {
	limiter, err := throttle.NewSafe(noop, time.Hour)
	if err != nil {
		b.Fatal(err)
	}
	limiter.Call("warm")

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			limiter.Call("payload")
		}
	})

	b.StopTimer()
	limiter.Stop()
}
