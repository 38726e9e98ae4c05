// Package activity coalesces bursts of events into a single action fired after a quiet period.
package activity

import (
	"sync"
	"time"

	"github.com/uber/dbg-sync/src/dbgsync/internal/clock"
)

// DefaultTimeout is the quiet period used when none is configured.
const DefaultTimeout = time.Second

// Monitor owns a cancellable, restartable delayed action.
//
// Every Schedule restarts the quiet period; the action fires once the period
// elapses without another Schedule. The action never runs concurrently with itself
// from the same Monitor, and never runs after Cancel or Dispose.
type Monitor struct {
	mu       sync.Mutex
	clock    clock.Clock
	timeout  time.Duration
	action   func()
	timer    clock.Timer
	seq      uint64
	pending  bool
	running  sync.Mutex
	disposed bool
}

// Params configure a Monitor.
type Params struct {
	Clock   clock.Clock
	Timeout time.Duration
	Action  func()
}

// New creates a Monitor. A nil Clock uses the real clock, a non-positive Timeout uses DefaultTimeout.
func New(p Params) *Monitor {
	if p.Clock == nil {
		p.Clock = clock.New()
	}
	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}
	return &Monitor{
		clock:   p.Clock,
		timeout: p.Timeout,
		action:  p.Action,
	}
}

// Schedule (re)starts the quiet period.
func (m *Monitor) Schedule() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.disposed {
		return
	}
	if m.timer != nil {
		m.timer.Stop()
	}

	m.seq++
	seq := m.seq
	m.pending = true
	m.timer = m.clock.AfterFunc(m.timeout, func() { m.fire(seq) })
}

// Cancel drops the pending action, if any.
func (m *Monitor) Cancel() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelLocked()
}

// IsPending reports whether an action is waiting for its quiet period to elapse.
func (m *Monitor) IsPending() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// Timeout returns the quiet period.
func (m *Monitor) Timeout() time.Duration {
	return m.timeout
}

// Dispose cancels the pending action and makes later Schedule calls no-ops.
func (m *Monitor) Dispose() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancelLocked()
	m.disposed = true
}

// IsDisposed reports whether Dispose has been called.
func (m *Monitor) IsDisposed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.disposed
}

func (m *Monitor) cancelLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	// Invalidate a callback that already left the timer but has not taken the lock yet.
	m.seq++
	m.pending = false
}

func (m *Monitor) fire(seq uint64) {
	m.running.Lock()
	defer m.running.Unlock()

	m.mu.Lock()
	if m.disposed || !m.pending || m.seq != seq || m.action == nil {
		m.mu.Unlock()
		return
	}
	m.pending = false
	m.timer = nil
	m.mu.Unlock()

	m.action()
}
