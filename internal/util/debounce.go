package util

import (
	"time"

	"github.com/iburimskiy/confetti/internal/frame"
)

// Scheduler is the timer half of frame.Loop.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) frame.TimerID
	Stop(id frame.TimerID) bool
}

// Debounce returns a function that runs fn once delay has passed without
// another call. Only the arguments of the last call are used.
func Debounce[A any](s Scheduler, delay time.Duration, fn func(A)) func(A) {
	var (
		pending frame.TimerID
		armed   bool
	)
	return func(arg A) {
		if armed {
			s.Stop(pending)
		}
		armed = true
		pending = s.AfterFunc(delay, func() {
			armed = false
			fn(arg)
		})
	}
}
