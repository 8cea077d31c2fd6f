package playback

import (
	"sort"
	"sync"
	"time"
)

// Clock arms one-shot timers.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the
	// call stopped the timer, false if it already fired or was stopped.
	Stop() bool
}

// ManualClock is a virtual clock. Nothing fires until Advance is called,
// and every callback runs on the goroutine calling Advance.
type ManualClock struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	due   time.Duration
	seq   int
	fn    func()
	done  bool
	clock *ManualClock
}

// NewManualClock returns a clock at virtual time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// AfterFunc arms fn to run once virtual time reaches now+d.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &manualTimer{due: c.now + d, seq: c.seq, fn: fn, clock: c}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves virtual time forward by d, firing due timers in due order.
// Timers due at the same instant fire in the order they were armed.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.due
		next.done = true
		c.remove(next)
		next.fn()
	}
	c.now = target
}

// Now returns the elapsed virtual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of armed timers.
func (c *ManualClock) Pending() int {
	return len(c.timers)
}

func (c *ManualClock) nextDue(target time.Duration) *manualTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].due != c.timers[j].due {
			return c.timers[i].due < c.timers[j].due
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	if c.timers[0].due > target {
		return nil
	}
	return c.timers[0]
}

func (c *ManualClock) remove(t *manualTimer) {
	for i, candidate := range c.timers {
		if candidate == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}

// LoopClock runs real timers but never invokes callbacks itself. Due
// callbacks are queued on C and the owner of the event loop runs them.
type LoopClock struct {
	ch        chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// NewLoopClock returns a clock whose queue holds up to buffer callbacks
// before timer goroutines block.
func NewLoopClock(buffer int) *LoopClock {
	if buffer < 0 {
		buffer = 0
	}
	return &LoopClock{
		ch:   make(chan func(), buffer),
		done: make(chan struct{}),
	}
}

// AfterFunc arms a real timer that queues fn when it fires.
func (c *LoopClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, func() {
		select {
		case c.ch <- fn:
		case <-c.done:
		}
	})
}

// C delivers due callbacks.
func (c *LoopClock) C() <-chan func() {
	return c.ch
}

// Done is closed once the clock is closed.
func (c *LoopClock) Done() <-chan struct{} {
	return c.done
}

// Close releases timer goroutines blocked on a full queue. Callbacks
// already queued are left for the owner to drain or drop.
func (c *LoopClock) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}
