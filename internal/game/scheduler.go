package game

import (
	"sync"
	"sync/atomic"
	"time"
)

// Handle cancels a scheduled task. Cancel is safe to call any number of times.
type Handle interface {
	Cancel()
}

// Scheduler runs deferred and periodic callbacks for a Session.
//
// Implementations must never run two callbacks concurrently with each other
// or with the caller's own calls into the Session.
type Scheduler interface {
	Now() time.Time
	After(d time.Duration, fn func()) Handle
	Every(period time.Duration, fn func()) Handle
}

// ClockScheduler is a Scheduler on the wall clock. Every callback is handed
// to dispatch, which is expected to run it on the goroutine that owns the
// Session (ctx.Dispatch in the browser).
type ClockScheduler struct {
	dispatch func(func())
}

// NewClockScheduler creates a wall-clock scheduler. If dispatch is nil the
// callbacks are serialised with a mutex of their own.
func NewClockScheduler(dispatch func(func())) *ClockScheduler {
	if dispatch == nil {
		dispatch = SerialDispatcher()
	}
	return &ClockScheduler{dispatch: dispatch}
}

// SerialDispatcher returns a dispatch function that runs callbacks inline
// under a shared lock. Callers driving a Session from several goroutines
// must route their own calls through it too.
func SerialDispatcher() func(func()) {
	var mu sync.Mutex
	return func(fn func()) {
		mu.Lock()
		defer mu.Unlock()
		fn()
	}
}

func (s *ClockScheduler) Now() time.Time { return time.Now() }

type clockHandle struct {
	canceled atomic.Bool
	timer    *time.Timer
	stop     chan struct{}
	once     sync.Once
}

func (h *clockHandle) Cancel() {
	h.once.Do(func() {
		h.canceled.Store(true)
		if h.timer != nil {
			h.timer.Stop()
		}
		if h.stop != nil {
			close(h.stop)
		}
	})
}

// After runs fn once, d from now, unless canceled first.
func (s *ClockScheduler) After(d time.Duration, fn func()) Handle {
	h := &clockHandle{}
	h.timer = time.AfterFunc(d, func() {
		s.dispatch(func() {
			if h.canceled.Load() {
				return
			}
			fn()
		})
	})
	return h
}

// Every runs fn each period until canceled.
func (s *ClockScheduler) Every(period time.Duration, fn func()) Handle {
	h := &clockHandle{stop: make(chan struct{})}
	ticker := time.NewTicker(period)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-h.stop:
				return
			case <-ticker.C:
				s.dispatch(func() {
					if h.canceled.Load() {
						return
					}
					fn()
				})
			}
		}
	}()
	return h
}
