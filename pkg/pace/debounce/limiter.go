package debounce

import (
	"sync"
	"time"

	"github.com/vnykmshr/gopace/pkg/common/errors"
	"github.com/vnykmshr/gopace/pkg/common/validation"
	"github.com/vnykmshr/gopace/pkg/pace"
)

// DefaultWait is the quiet period used by New when no wait is given.
const DefaultWait = 20 * time.Millisecond

// Limiter collapses bursts of calls into one deferred invocation fired
// after a quiet period with no new calls. At most one deferred action is
// pending per Limiter at any time.
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

	// Wait returns the configured quiet period.
	Wait() time.Duration
}

// Config holds configuration options for creating a new Limiter.
type Config struct {
	// Fn is the function to debounce. Required.
	Fn pace.Func

	// Wait is the quiet period. Zero is valid: the deferred action fires
	// on the next scheduler tick unless superseded. Must not be negative.
	Wait time.Duration

	// MaxWait bounds the total deferral under a sustained burst: the
	// function fires no later than MaxWait after the burst began, with
	// the latest arguments seen. Zero disables the bound. If set, it
	// must not be less than Wait.
	MaxWait time.Duration

	// Context is an optional fixed context value passed to every
	// invocation of Fn. If nil, each invocation uses the context value
	// of the last call before it fired.
	Context any

	// Scheduler provides the delayed-action facility. If nil, pace.System is used.
	Scheduler pace.Scheduler
}

// debouncer implements the Limiter interface.
type debouncer struct {
	mu        sync.Mutex
	fn        pace.Func
	wait      time.Duration
	maxWait   time.Duration
	fixedCtx  any
	scheduler pace.Scheduler

	timer       pace.Timer // quiet-period timer, nil when idle
	maxTimer    pace.Timer // deadline timer, nil unless a burst is open
	seq         uint64     // invalidates stale timer callbacks
	dirty       bool       // a call is pending invocation
	pendingCtx  any
	pendingArgs []any
	last        any
}

// New creates a debounced wrapper around fn using DefaultWait.
// It panics if fn is nil.
func New(fn pace.Func) Limiter {
	limiter, err := NewSafe(fn, DefaultWait)
	if err != nil {
		panic(err)
	}
	return limiter
}

// NewSafe creates a debounced wrapper around fn with the given quiet
// period, returning an error instead of panicking on invalid input.
// This is the recommended way to create debounced functions for production use.
func NewSafe(fn pace.Func, wait time.Duration) (Limiter, error) {
	return NewWithConfigSafe(Config{
		Fn:   fn,
		Wait: wait,
	})
}

// NewWithConfig creates a debounced wrapper with custom configuration.
// It panics on invalid configuration.
func NewWithConfig(config Config) Limiter {
	limiter, err := NewWithConfigSafe(config)
	if err != nil {
		panic(err)
	}
	return limiter
}

// NewWithConfigSafe creates a debounced wrapper with custom configuration,
// returning an error instead of panicking on invalid input.
func NewWithConfigSafe(config Config) (Limiter, error) {
	if config.Fn == nil {
		return nil, errors.NewValidationError("debounce", "fn", nil, "cannot be nil").
			WithHint("provide the function to debounce")
	}
	if err := validation.ValidateNonNegativeDuration("debounce", "wait", config.Wait); err != nil {
		return nil, err
	}
	if config.MaxWait != 0 && config.MaxWait < config.Wait {
		return nil, errors.NewValidationError("debounce", "maxWait", config.MaxWait, "must not be less than wait").
			WithHint("use 0 to disable the deadline")
	}
	if config.Scheduler == nil {
		config.Scheduler = pace.System
	}

	return &debouncer{
		fn:        config.Fn,
		wait:      config.Wait,
		maxWait:   config.MaxWait,
		fixedCtx:  config.Context,
		scheduler: config.Scheduler,
	}, nil
}
