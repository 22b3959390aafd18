package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/vnykmshr/gopace/pkg/pace"
)

// FakeScheduler implements pace.Scheduler with virtual time. Tests schedule
// actions as usual and then call Advance to fire whatever has come due,
// making timing-dependent behavior fully deterministic.
type FakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	sched   *FakeScheduler
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// NewFakeScheduler creates a FakeScheduler starting at virtual time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc registers fn to run once virtual time advances past d from now.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) pace.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &fakeTimer{
		sched: s,
		at:    s.now + d,
		fn:    fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Stop cancels the timer, reporting whether it was still pending.
func (t *fakeTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves virtual time forward by d and fires all due actions in
// schedule order. Actions run synchronously on the calling goroutine,
// without the scheduler lock held.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	s.mu.Unlock()

	for {
		t := s.nextDue()
		if t == nil {
			return
		}
		t.fn()
	}
}

// nextDue pops the earliest due, unfired, unstopped timer.
func (s *FakeScheduler) nextDue() *fakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	sort.SliceStable(s.timers, func(i, j int) bool {
		return s.timers[i].at < s.timers[j].at
	})
	for _, t := range s.timers {
		if !t.fired && !t.stopped && t.at <= s.now {
			t.fired = true
			return t
		}
	}
	return nil
}

// PendingCount returns the number of actions scheduled but not yet fired.
func (s *FakeScheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			count++
		}
	}
	return count
}

// CallRecorder captures invocations of a paced function: how many happened,
// with which arguments, and with which context value. Safe for concurrent use.
type CallRecorder struct {
	mu       sync.Mutex
	args     [][]any
	contexts []any
	result   any
}

// NewCallRecorder creates a CallRecorder whose Fn returns result on every
// invocation.
func NewCallRecorder(result any) *CallRecorder {
	return &CallRecorder{result: result}
}

// Fn is the pace.Func to hand to a wrapper under test.
func (r *CallRecorder) Fn(contextVal any, args ...any) any {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.args = append(r.args, args)
	r.contexts = append(r.contexts, contextVal)
	return r.result
}

// SetResult changes the value Fn returns for subsequent invocations.
func (r *CallRecorder) SetResult(result any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result = result
}

// Count returns the number of invocations recorded so far.
func (r *CallRecorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.args)
}

// Args returns the arguments of the i-th invocation.
func (r *CallRecorder) Args(i int) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.args[i]
}

// Context returns the context value of the i-th invocation.
func (r *CallRecorder) Context(i int) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contexts[i]
}
