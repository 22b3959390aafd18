/*
Package distributed provides suppression windows shared across application
instances, coordinated through Redis.

A Gate generalizes the in-process throttle/debounce window to a fleet: the
first instance to claim a key owns the window, and every other claim, from
any instance, is suppressed until the window expires.

	gate, err := distributed.NewGateSafe(distributed.Config{
		Redis:  client,
		Window: 30 * time.Second,
	})
	if err != nil {
		// invalid configuration
	}

	ok, err := gate.Try(ctx, "cache-rebuild")
	if ok {
		rebuildCache() // exactly one instance per 30s window gets here
	}

Try is the throttle-shaped primitive: claims are first-wins and the window
never moves. Hold is the debounce-shaped primitive: it unconditionally
re-opens the window for the key, postponing expiry. Callers typically Hold
on every event and act only when Remaining reports the window has lapsed.

When Redis is unreachable the gate either suppresses (default) or lets the
call through if Config.FailOpen is set; either way the error is returned so
callers can observe the degradation.
*/
package distributed
