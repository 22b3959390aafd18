package debounce

import "time"

// Call records a call with a nil context value.
func (d *debouncer) Call(args ...any) any {
	return d.CallWith(nil, args...)
}

// CallWith records a call with an explicit per-call context value. Any
// pending quiet-period timer is cancelled and a new one is armed capturing
// this call's context and arguments.
func (d *debouncer) CallWith(contextVal any, args ...any) any {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fixedCtx != nil {
		contextVal = d.fixedCtx
	}
	if d.timer != nil {
		d.timer.Stop()
	}

	d.dirty = true
	d.pendingCtx = contextVal
	d.pendingArgs = args
	d.seq++
	seq := d.seq
	d.timer = d.scheduler.AfterFunc(d.wait, func() {
		d.quietElapsed(seq)
	})

	// The deadline timer is armed once per burst, on the call that opens it.
	if d.maxWait > 0 && d.maxTimer == nil {
		d.maxTimer = d.scheduler.AfterFunc(d.maxWait, d.deadlineElapsed)
	}

	return d.last
}

// quietElapsed runs when a quiet period passes with no intervening call.
func (d *debouncer) quietElapsed(seq uint64) {
	d.mu.Lock()
	if seq != d.seq || !d.dirty {
		// A newer call re-armed the timer, or Stop cleared the burst.
		d.mu.Unlock()
		return
	}
	d.flushLocked()
}

// deadlineElapsed runs when an open burst reaches its MaxWait deadline.
func (d *debouncer) deadlineElapsed() {
	d.mu.Lock()
	if !d.dirty {
		d.mu.Unlock()
		return
	}
	d.flushLocked()
}

// flushLocked consumes the pending call and invokes the wrapped function.
// It is entered with the mutex held and releases it around the invocation.
func (d *debouncer) flushLocked() {
	contextVal := d.pendingCtx
	args := d.pendingArgs
	fn := d.fn

	d.dirty = false
	d.pendingCtx = nil
	d.pendingArgs = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.maxTimer != nil {
		d.maxTimer.Stop()
		d.maxTimer = nil
	}
	d.seq++ // invalidate any quiet timer already in flight
	d.mu.Unlock()

	result := fn(contextVal, args...)

	d.mu.Lock()
	d.last = result
	d.mu.Unlock()
}

// Pending reports whether a deferred invocation is currently scheduled.
func (d *debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dirty
}

// Stop cancels any pending deferred invocation.
func (d *debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.dirty {
		return false
	}

	d.dirty = false
	d.pendingCtx = nil
	d.pendingArgs = nil
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.maxTimer != nil {
		d.maxTimer.Stop()
		d.maxTimer = nil
	}
	d.seq++
	return true
}

// Last returns the result of the most recently completed invocation.
func (d *debouncer) Last() any {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Wait returns the configured quiet period.
func (d *debouncer) Wait() time.Duration {
	return d.wait
}
