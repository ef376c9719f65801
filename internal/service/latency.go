package service

import "time"

// Simulated request latency per operation kind, matching the mock API this
// replaces. Scaled by one configured factor; never interruptible — a started
// operation always resolves.
const (
	authDelay   = 800 * time.Millisecond
	listDelay   = 600 * time.Millisecond
	readDelay   = 500 * time.Millisecond
	writeDelay  = 800 * time.Millisecond
	deleteDelay = 500 * time.Millisecond
	reactDelay  = 500 * time.Millisecond
)

type latency struct {
	factor float64
}

func (l latency) sleep(d time.Duration) {
	if l.factor <= 0 {
		return
	}
	time.Sleep(time.Duration(float64(d) * l.factor))
}
