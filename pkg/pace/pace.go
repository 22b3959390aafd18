package pace

import "time"

// Func is the callable wrapped by a pacing strategy. The contextVal
// parameter carries the invocation context captured when the triggering
// call was made: the fixed context configured at construction if one was
// set, otherwise the value passed to CallWith (nil for plain Call). The
// returned value is retained by the wrapper and handed back synchronously
// to subsequent callers.
type Func func(contextVal any, args ...any) any

// Timer is a handle to a scheduled, cancellable delayed action.
type Timer interface {
	// Stop cancels the delayed action. It reports whether the action
	// was still pending; false means it already fired or was stopped.
	Stop() bool
}

// Scheduler schedules delayed actions. It abstracts the host timer
// facility so pacing strategies can be driven deterministically in tests.
type Scheduler interface {
	// AfterFunc arranges for fn to run in its own goroutine after d.
	AfterFunc(d time.Duration, fn func()) Timer
}

// systemScheduler implements Scheduler using the runtime timer facility.
type systemScheduler struct{}

// AfterFunc schedules fn via time.AfterFunc.
func (systemScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// System is the default Scheduler backed by time.AfterFunc.
var System Scheduler = systemScheduler{}
