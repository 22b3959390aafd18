/*
Package pace provides the shared contracts for gopace's pacing strategies.

This package defines three things used by every strategy:

  - Func: the shape of a paced callable
  - Scheduler/Timer: the delayed-action facility strategies schedule on
  - System: the default Scheduler backed by the runtime timer

The strategies themselves live in subpackages:

  - throttle: Once a call arrives, further calls within a cooldown window
    are suppressed; the wrapped function fires once per window with the
    first call's arguments, after a delay.
  - debounce: Every call resets a pending timer; the wrapped function
    fires only after calls stop arriving for a quiet period, with the
    last call's arguments.
  - cadence: Calls are sampled onto a cron cadence; each tick fires the
    wrapped function with the latest arguments seen since the last tick.
  - distributed: Suppression windows shared across application instances
    through Redis.

Throttle vs Debounce:

Throttle guarantees steady progress under a continuous stream of calls and
is ideal for rendering, progress reporting, and telemetry:

	render, _ := throttle.NewSafe(repaint, 50*time.Millisecond)
	render.Call(viewport) // at most one repaint per 50ms

Debounce waits for the stream to go quiet and is ideal for expensive work
that should only happen once input settles:

	save, _ := debounce.NewSafe(persist, 200*time.Millisecond)
	save.Call(document) // persists once typing pauses for 200ms

Both wrappers return the result of the most recently completed invocation
synchronously from every call; the just-made call's own invocation is always
deferred, so the returned value is stale by one window.

Wrapped functions receive an explicit context value in place of the implicit
receiver binding found in dynamic languages. A fixed context value can be
set at construction; otherwise each call may supply one through CallWith.
*/
package pace
