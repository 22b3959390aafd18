/*
Package gopace provides call-pacing utilities for Go: function wrappers that
coalesce bursts of calls into controlled, deferred invocations.

Pacing Strategies (pkg/pace):
  - throttle: At most one deferred invocation per cooldown window,
    using the first call's arguments in each burst
  - debounce: A single deferred invocation once calls stop arriving
    for a quiet period, using the last call's arguments
  - cadence: Invocations sampled onto a fixed cron cadence,
    using the latest call's arguments at each tick
  - distributed: Cross-instance suppression windows coordinated with Redis

Support:
  - id: Lightweight UUID-based identifier helpers
  - metrics: Prometheus instrumentation for pacing components

Example usage:

	import (
		"github.com/vnykmshr/gopace/pkg/pace/debounce"
		"github.com/vnykmshr/gopace/pkg/pace/throttle"
	)

	save, _ := debounce.NewSafe(persist, 200*time.Millisecond)
	render, _ := throttle.NewSafe(repaint, 50*time.Millisecond)

	save.Call(document)   // fires once typing pauses
	render.Call(viewport) // fires at most once per 50ms
*/
package gopace
