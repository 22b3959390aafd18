/*
Package debounce provides invocation-rate limiting for callback-style
functions: every call resets a pending timer, and the wrapped function
fires only once calls stop arriving for a quiet period.

Basic usage:

	save, err := debounce.NewSafe(persist, 200*time.Millisecond)
	if err != nil {
		// invalid wait
	}
	save.Call(document) // arms the quiet-period timer
	save.Call(document) // re-arms it; persist fires 200ms after the last call

Selection policy:

Bursts of calls collapse to a single deferred execution using the last
call's arguments, fired once the full quiet period elapses with no new
calls. Compare package throttle, which uses the first call's arguments and
fires on a fixed cadence regardless of continued calls.

A sustained stream of calls can postpone execution indefinitely. Set
Config.MaxWait to put an upper bound on the total deferral: the wrapped
function then fires no later than MaxWait after the burst began, with the
latest arguments seen.

Every call returns the result of the most recently completed invocation of
the wrapped function, or nil before the first one completes.

Context capture and error behavior match package throttle: an explicit
context value replaces implicit receiver binding, construction fails for a
negative wait or nil function, and panics from the wrapped function
propagate on the timer goroutine.
*/
package debounce
