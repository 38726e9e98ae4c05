package widget

import (
	"sync"

	"github.com/uber/dbg-sync/src/dbgsync/internal/signal"
)

// base carries the identity and disposal state shared by every top level widget.
type base struct {
	id        string
	mu        sync.Mutex
	disposed  bool
	onDispose *signal.Signal[struct{}]
}

// ID returns the widget id.
func (b *base) ID() string { return b.id }

// OnDisposed registers fn to run once the widget is disposed.
func (b *base) OnDisposed(fn func()) (disconnect func()) {
	return b.onDispose.Connect(func(struct{}) { fn() })
}

// IsDisposed reports whether the widget has been disposed.
func (b *base) IsDisposed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disposed
}

// markDisposed flips the disposed flag and reports whether this call did it.
func (b *base) markDisposed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.disposed {
		return false
	}
	b.disposed = true
	return true
}

func (b *base) emitDisposed() {
	b.onDispose.Emit(struct{}{})
	b.onDispose.DisconnectAll()
}
