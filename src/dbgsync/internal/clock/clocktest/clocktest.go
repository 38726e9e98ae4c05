// Package clocktest provides a simulated clock.Clock whose time only moves when told to.
package clocktest

import (
	"sort"
	"sync"
	"time"

	"github.com/uber/dbg-sync/src/dbgsync/internal/clock"
)

// Clock is a simulated clock. Timers fire synchronously on the goroutine calling Advance.
type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	timers []*timer
}

var _ clock.Clock = (*Clock)(nil)

type timer struct {
	c       *Clock
	seq     uint64
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

// New returns a simulated clock starting at a fixed instant.
func New() *Clock {
	return &Clock{now: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the simulated time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Sleep advances the simulated time by d.
func (c *Clock) Sleep(d time.Duration) {
	c.Advance(d)
}

// AfterFunc schedules f to run once the simulated time reaches now+d.
func (c *Clock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &timer{c: c, seq: c.seq, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the simulated time forward by d, firing every timer that becomes due in deadline order.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		if next.at.After(c.now) {
			c.now = next.at
		}
		next.fired = true
		c.removeLocked(next)
		c.mu.Unlock()

		next.f()
	}
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *Clock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *Clock) nextDueLocked(target time.Time) *timer {
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at.Equal(c.timers[j].at) {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].at.Before(c.timers[j].at)
	})
	if len(c.timers) == 0 || c.timers[0].at.After(target) {
		return nil
	}
	return c.timers[0]
}

func (c *Clock) removeLocked(t *timer) {
	for i, candidate := range c.timers {
		if candidate == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Stop implements clock.Timer.
func (t *timer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.c.removeLocked(t)
	return true
}
