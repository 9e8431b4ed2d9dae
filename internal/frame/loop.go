// Package frame provides the cooperative scheduler that stands in for the
// display refresh signal and deferred timers.
//
// A host owns one Loop and calls Tick once per update. Every callback runs on
// the goroutine calling Tick, so the effect systems never share state across
// goroutines.
package frame

import (
	"container/heap"
	"time"
)

// TimerID identifies a pending deferred callback.
type TimerID uint64

// FrameID identifies a pending frame callback.
type FrameID uint64

type timer struct {
	id      TimerID
	due     time.Time
	seq     uint64
	fn      func()
	index   int
	stopped bool
}

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

type request struct {
	id FrameID
	fn func(now time.Time)
}

// Loop schedules frame callbacks and timers.
type Loop struct {
	clock   Clock
	timers  timerHeap
	byID    map[TimerID]*timer
	frames  []*request
	running []*request
	nextID  uint64
}

// NewLoop creates a loop reading time from clock. A nil clock means the wall clock.
func NewLoop(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		clock: clock,
		byID:  make(map[TimerID]*timer),
	}
}

// Now returns the loop's current time.
func (l *Loop) Now() time.Time { return l.clock.Now() }

func (l *Loop) id() uint64 {
	l.nextID++
	return l.nextID
}

// AfterFunc runs fn on the first Tick at least d after now.
func (l *Loop) AfterFunc(d time.Duration, fn func()) TimerID {
	seq := l.id()
	t := &timer{
		id:  TimerID(seq),
		due: l.clock.Now().Add(d),
		seq: seq,
		fn:  fn,
	}
	heap.Push(&l.timers, t)
	l.byID[t.id] = t
	return t.id
}

// Stop cancels a pending timer. It reports false if the timer already fired
// or was stopped.
func (l *Loop) Stop(id TimerID) bool {
	t, ok := l.byID[id]
	if !ok {
		return false
	}
	delete(l.byID, id)
	t.stopped = true
	if t.index >= 0 {
		heap.Remove(&l.timers, t.index)
	}
	return true
}

// RequestFrame runs fn once on the next Tick. Requests made while a tick is
// running are deferred to the following tick.
func (l *Loop) RequestFrame(fn func(now time.Time)) FrameID {
	r := &request{id: FrameID(l.id()), fn: fn}
	l.frames = append(l.frames, r)
	return r.id
}

// CancelFrame drops a pending frame request.
func (l *Loop) CancelFrame(id FrameID) {
	for _, set := range [][]*request{l.frames, l.running} {
		for _, r := range set {
			if r.id == id {
				r.fn = nil
			}
		}
	}
}

// Pending reports the number of live timers and frame requests.
func (l *Loop) Pending() (timers, frames int) {
	for _, r := range l.frames {
		if r.fn != nil {
			frames++
		}
	}
	return len(l.byID), frames
}

// Tick fires due timers, then the frame callbacks queued before the tick.
func (l *Loop) Tick() {
	now := l.clock.Now()

	var due []*timer
	for len(l.timers) > 0 && !l.timers[0].due.After(now) {
		due = append(due, heap.Pop(&l.timers).(*timer))
	}
	for _, t := range due {
		if t.stopped {
			continue
		}
		delete(l.byID, t.id)
		t.fn()
	}

	l.running, l.frames = l.frames, nil
	for _, r := range l.running {
		if r.fn == nil {
			continue
		}
		fn := r.fn
		r.fn = nil
		fn(now)
	}
	l.running = nil
}
