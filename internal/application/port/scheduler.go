package port

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	// Stop cancels the call. It reports whether the call was still pending.
	Stop() bool
}

// Scheduler runs callbacks on the host event loop.
type Scheduler interface {
	// Post runs fn once the current event has been processed.
	Post(fn func())
	// AfterFunc runs fn on the event loop after d.
	AfterFunc(d time.Duration, fn func()) Timer
}
