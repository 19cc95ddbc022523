// Package schedule runs cancellable periodic tasks. Virtual is driven by
// explicit Advance calls; Real is backed by wall-clock timers.
package schedule

import "time"

// Task is a registered periodic callback. Pause keeps the time remaining
// until the next firing so Resume continues the same phase.
type Task interface {
	Pause()
	Resume()
	Stop()
}

type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}
