/*
Package cadence samples calls onto a fixed cron cadence: the wrapper records
the latest call's context and arguments, and each tick of the schedule
invokes the wrapped function once with them, but only if at least one call
arrived since the previous tick.

This is a third selection policy alongside throttle (first call per window)
and debounce (last call after a quiet period): cadence fires on a wall-clock
schedule with the last call's data, regardless of how the burst was shaped.

Basic usage:

	report, err := cadence.NewSafe(uploadStats, "0,15,30,45 * * * * *")
	if err != nil {
		// invalid cron spec
	}
	if err := report.Start(); err != nil {
		// already running
	}
	defer report.Stop()

	report.Call(snapshot) // uploaded at the next 15-second boundary

Cron expressions use six fields with a leading seconds field, in the
configured location (time.Local by default).
*/
package cadence
