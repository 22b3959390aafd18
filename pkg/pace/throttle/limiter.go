package throttle

import (
	"sync"
	"time"

	"github.com/vnykmshr/gopace/pkg/common/errors"
	"github.com/vnykmshr/gopace/pkg/common/validation"
	"github.com/vnykmshr/gopace/pkg/pace"
)

// DefaultWait is the cooldown window used by New when no wait is given.
const DefaultWait = 20 * time.Millisecond

// Limiter coalesces bursts of calls into one deferred invocation per
// cooldown window. At most one deferred action is pending per Limiter
// at any time.
type Limiter interface {
	// Call records a call with a nil context value. It returns the result
	// of the most recently completed invocation of the wrapped function,
	// or nil if none has completed yet. It never blocks.
	Call(args ...any) any

	// CallWith records a call with an explicit per-call context value.
	// The context value is ignored when a fixed context was configured.
	CallWith(contextVal any, args ...any) any

	// Pending reports whether a deferred invocation is currently scheduled.
	Pending() bool

	// Stop cancels any pending deferred invocation. It reports whether
	// one was pending. The Limiter remains usable afterward.
	Stop() bool

	// Last returns the result of the most recently completed invocation,
	// or nil if none has completed yet.
	Last() any

	// Wait returns the configured cooldown window.
	Wait() time.Duration
}

// Config holds configuration options for creating a new Limiter.
type Config struct {
	// Fn is the function to throttle. Required.
	Fn pace.Func

	// Wait is the cooldown window. Zero is valid: the deferred action
	// fires on the next scheduler tick. Must not be negative.
	Wait time.Duration

	// Context is an optional fixed context value passed to every
	// invocation of Fn. If nil, each invocation uses the context value
	// of the call that scheduled it.
	Context any

	// Scheduler provides the delayed-action facility. If nil, pace.System is used.
	Scheduler pace.Scheduler
}

// throttler implements the Limiter interface.
type throttler struct {
	mu        sync.Mutex
	fn        pace.Func
	wait      time.Duration
	fixedCtx  any
	scheduler pace.Scheduler
	timer     pace.Timer // nil when idle
	seq       uint64     // invalidates stale timer callbacks
	last      any
}

// New creates a throttled wrapper around fn using DefaultWait.
// It panics if fn is nil.
func New(fn pace.Func) Limiter {
	limiter, err := NewSafe(fn, DefaultWait)
	if err != nil {
		panic(err)
	}
	return limiter
}

// NewSafe creates a throttled wrapper around fn with the given cooldown
// window, returning an error instead of panicking on invalid input.
// This is the recommended way to create throttled functions for production use.
func NewSafe(fn pace.Func, wait time.Duration) (Limiter, error) {
	return NewWithConfigSafe(Config{
		Fn:   fn,
		Wait: wait,
	})
}

// NewWithConfig creates a throttled wrapper with custom configuration.
// It panics on invalid configuration.
func NewWithConfig(config Config) Limiter {
	limiter, err := NewWithConfigSafe(config)
	if err != nil {
		panic(err)
	}
	return limiter
}

// NewWithConfigSafe creates a throttled wrapper with custom configuration,
// returning an error instead of panicking on invalid input.
func NewWithConfigSafe(config Config) (Limiter, error) {
	if config.Fn == nil {
		return nil, errors.NewValidationError("throttle", "fn", nil, "cannot be nil").
			WithHint("provide the function to throttle")
	}
	if err := validation.ValidateNonNegativeDuration("throttle", "wait", config.Wait); err != nil {
		return nil, err
	}
	if config.Scheduler == nil {
		config.Scheduler = pace.System
	}

	return &throttler{
		fn:        config.Fn,
		wait:      config.Wait,
		fixedCtx:  config.Context,
		scheduler: config.Scheduler,
	}, nil
}
