package cadence

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vnykmshr/gopace/pkg/common/errors"
	"github.com/vnykmshr/gopace/pkg/common/validation"
	"github.com/vnykmshr/gopace/pkg/pace"
)

// Sampler records calls and replays the most recent one onto a cron cadence.
type Sampler interface {
	// Call records a call with a nil context value. It returns the result
	// of the most recently completed invocation of the wrapped function,
	// or nil if none has completed yet. It never blocks.
	Call(args ...any) any

	// CallWith records a call with an explicit per-call context value.
	// The context value is ignored when a fixed context was configured.
	CallWith(contextVal any, args ...any) any

	// Start begins firing on the configured cadence. It returns
	// ErrAlreadyRunning if the sampler was already started.
	Start() error

	// Stop halts the cadence. The returned channel closes once any
	// in-flight invocation completes. Recorded state is retained, so the
	// sampler can be started again.
	Stop() <-chan struct{}

	// Pending reports whether a call has been recorded since the last tick.
	Pending() bool

	// Last returns the result of the most recently completed invocation,
	// or nil if none has completed yet.
	Last() any

	// Spec returns the configured cron expression.
	Spec() string
}

// Config holds configuration options for creating a new Sampler.
type Config struct {
	// Fn is the function to sample onto the cadence. Required.
	Fn pace.Func

	// Spec is a six-field cron expression (with a leading seconds field)
	// describing the cadence. Required.
	Spec string

	// Context is an optional fixed context value passed to every
	// invocation of Fn. If nil, each invocation uses the context value
	// of the latest recorded call.
	Context any

	// Location is the time zone for the cadence. If nil, time.Local is used.
	Location *time.Location
}

// sampler implements the Sampler interface.
type sampler struct {
	mu       sync.Mutex
	fn       pace.Func
	spec     string
	fixedCtx any
	runner   *cron.Cron
	running  bool

	dirty       bool
	pendingCtx  any
	pendingArgs []any
	last        any
}

// NewSafe creates a Sampler firing fn on the given cron cadence, returning
// an error instead of panicking on invalid input.
func NewSafe(fn pace.Func, spec string) (Sampler, error) {
	return NewWithConfigSafe(Config{
		Fn:   fn,
		Spec: spec,
	})
}

// NewWithConfigSafe creates a Sampler with custom configuration, returning
// an error instead of panicking on invalid input.
func NewWithConfigSafe(config Config) (Sampler, error) {
	if config.Fn == nil {
		return nil, errors.NewValidationError("cadence", "fn", nil, "cannot be nil").
			WithHint("provide the function to sample")
	}
	if err := validation.ValidateNotEmpty("cadence", "spec", config.Spec); err != nil {
		return nil, err
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(config.Spec)
	if err != nil {
		return nil, errors.NewValidationError("cadence", "spec", config.Spec, err.Error()).
			WithHint("use a six-field cron expression with a leading seconds field")
	}

	location := config.Location
	if location == nil {
		location = time.Local
	}

	s := &sampler{
		fn:       config.Fn,
		spec:     config.Spec,
		fixedCtx: config.Context,
	}
	s.runner = cron.New(cron.WithLocation(location), cron.WithParser(parser))
	s.runner.Schedule(schedule, cron.FuncJob(s.tick))

	return s, nil
}

// Call records a call with a nil context value.
func (s *sampler) Call(args ...any) any {
	return s.CallWith(nil, args...)
}

// CallWith records a call with an explicit per-call context value. Only the
// latest recorded call survives until the next tick.
func (s *sampler) CallWith(contextVal any, args ...any) any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fixedCtx != nil {
		contextVal = s.fixedCtx
	}
	s.dirty = true
	s.pendingCtx = contextVal
	s.pendingArgs = args
	return s.last
}

// tick runs on each cadence boundary.
func (s *sampler) tick() {
	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return
	}
	contextVal := s.pendingCtx
	args := s.pendingArgs
	fn := s.fn
	s.dirty = false
	s.pendingCtx = nil
	s.pendingArgs = nil
	s.mu.Unlock()

	result := fn(contextVal, args...)

	s.mu.Lock()
	s.last = result
	s.mu.Unlock()
}

// Start begins firing on the configured cadence.
func (s *sampler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.ErrAlreadyRunning
	}
	s.running = true
	s.runner.Start()
	return nil
}

// Stop halts the cadence.
func (s *sampler) Stop() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		done := make(chan struct{})
		close(done)
		return done
	}
	s.running = false
	return s.runner.Stop().Done()
}

// Pending reports whether a call has been recorded since the last tick.
func (s *sampler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Last returns the result of the most recently completed invocation.
func (s *sampler) Last() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Spec returns the configured cron expression.
func (s *sampler) Spec() string {
	return s.spec
}
