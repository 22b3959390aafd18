package throttle

import "time"

// Call records a call with a nil context value.
func (t *throttler) Call(args ...any) any {
	return t.CallWith(nil, args...)
}

// CallWith records a call with an explicit per-call context value. The
// first call in an idle window schedules the deferred invocation and
// captures this call's context and arguments; calls arriving while a
// timer is pending are discarded.
func (t *throttler) CallWith(contextVal any, args ...any) any {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer == nil {
		if t.fixedCtx != nil {
			contextVal = t.fixedCtx
		}
		t.seq++
		seq := t.seq
		captured := args
		ctxVal := contextVal
		t.timer = t.scheduler.AfterFunc(t.wait, func() {
			t.fire(seq, ctxVal, captured)
		})
	}
	return t.last
}

// fire runs when the cooldown window elapses. The timer stays set while
// the wrapped function executes, so reentrant calls made from inside it
// are still suppressed; it clears once the result is stored.
func (t *throttler) fire(seq uint64, contextVal any, args []any) {
	t.mu.Lock()
	if seq != t.seq {
		// A Stop raced this callback; the window no longer exists.
		t.mu.Unlock()
		return
	}
	fn := t.fn
	t.mu.Unlock()

	result := fn(contextVal, args...)

	t.mu.Lock()
	t.last = result
	if seq == t.seq {
		t.timer = nil
	}
	t.mu.Unlock()
}

// Pending reports whether a deferred invocation is currently scheduled.
func (t *throttler) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}

// Stop cancels any pending deferred invocation.
func (t *throttler) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer == nil {
		return false
	}
	t.timer.Stop()
	t.timer = nil
	t.seq++
	return true
}

// Last returns the result of the most recently completed invocation.
func (t *throttler) Last() any {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Wait returns the configured cooldown window.
func (t *throttler) Wait() time.Duration {
	return t.wait
}
