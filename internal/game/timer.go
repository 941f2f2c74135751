package game

import (
	"fmt"
	"time"
)

// Timer tracks elapsed time against a fixed countdown limit, ticking on a
// Scheduler. It fires its time-up callback at most once per Start.
type Timer struct {
	sched  Scheduler
	limit  time.Duration
	period time.Duration

	start   time.Time
	elapsed time.Duration
	ticker  Handle
	running bool
	expired bool

	// OnTick is called after every tick that did not expire the timer.
	OnTick func(remaining time.Duration)
	// OnTimeUp is called once, on the tick that reaches the limit.
	OnTimeUp func()
}

// NewTimer creates a stopped timer.
func NewTimer(sched Scheduler, limit, period time.Duration) *Timer {
	return &Timer{sched: sched, limit: limit, period: period}
}

// Start records the start instant and begins ticking.
func (t *Timer) Start() {
	t.Stop()
	t.start = t.sched.Now()
	t.elapsed = 0
	t.expired = false
	t.running = true
	t.ticker = t.sched.Every(t.period, t.tick)
}

// Stop cancels the periodic tick. The elapsed time is frozen at its value
// at the moment of stopping.
func (t *Timer) Stop() {
	if t.running {
		t.elapsed = t.sched.Now().Sub(t.start)
		t.running = false
	}
	if t.ticker != nil {
		t.ticker.Cancel()
		t.ticker = nil
	}
}

func (t *Timer) tick() {
	if !t.running {
		return
	}
	t.elapsed = t.sched.Now().Sub(t.start)
	if t.elapsed >= t.limit {
		t.elapsed = t.limit
		t.Stop()
		if !t.expired {
			t.expired = true
			if t.OnTimeUp != nil {
				t.OnTimeUp()
			}
		}
		return
	}
	if t.OnTick != nil {
		t.OnTick(t.Remaining())
	}
}

// Running reports whether the timer is ticking.
func (t *Timer) Running() bool { return t.running }

// Expired reports whether the limit was reached since the last Start.
func (t *Timer) Expired() bool { return t.expired }

// Elapsed returns the time since Start, capped at the limit, measured live
// while running.
func (t *Timer) Elapsed() time.Duration {
	e := t.elapsed
	if t.running {
		e = t.sched.Now().Sub(t.start)
	}
	return min(e, t.limit)
}

// Remaining returns max(0, limit - elapsed).
func (t *Timer) Remaining() time.Duration {
	return max(0, t.limit-t.Elapsed())
}

// FormatClock renders a duration as zero-padded MM:SS, rounding partial
// seconds up so a countdown shows 00:01 until it actually hits zero.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
