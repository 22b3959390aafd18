/*
Package throttle provides invocation-rate limiting for callback-style
functions: once a call arrives, further calls within a cooldown window are
suppressed, and the wrapped function fires once per window after a delay.

Basic usage:

	render, err := throttle.NewSafe(repaint, 50*time.Millisecond)
	if err != nil {
		// invalid wait
	}
	render.Call(viewport) // schedules repaint 50ms out
	render.Call(viewport) // suppressed, window already claimed

Selection policy:

Bursts of calls within one window collapse to a single deferred execution
using the first call's arguments in that burst; later calls are no-ops
while a timer is pending. Compare package debounce, which uses the last
call's arguments and keeps postponing while calls continue.

Every call returns the result of the most recently completed invocation of
the wrapped function, or nil before the first one completes. The value is
always stale by one window relative to the call being made.

Context capture:

The wrapped function receives an explicit context value. If Config.Context
is set, every invocation uses it; otherwise each invocation uses whatever
the triggering call supplied through CallWith (nil for plain Call).

Error behavior:

Construction fails for a negative wait or a nil function. Panics raised by
the wrapped function when the deferred action fires are not recovered; they
propagate on the timer goroutine.
*/
package throttle
