// Package signal provides a typed, synchronous observer list.
package signal

import "sync"

// Signal delivers values to connected slots in connection order, on the emitting goroutine.
type Signal[T any] struct {
	mu     sync.Mutex
	nextID uint64
	slots  []slot[T]
}

type slot[T any] struct {
	id uint64
	fn func(T)
}

// New creates an empty Signal.
func New[T any]() *Signal[T] {
	return &Signal[T]{}
}

// Connect registers fn and returns a function that disconnects it.
// Disconnecting more than once is a no-op.
func (s *Signal[T]) Connect(fn func(T)) (disconnect func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.slots = append(s.slots, slot[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.disconnect(id) })
	}
}

// Emit calls every slot connected at the time of the call.
// Slots may connect or disconnect from within a callback.
func (s *Signal[T]) Emit(v T) {
	s.mu.Lock()
	slots := make([]slot[T], len(s.slots))
	copy(slots, s.slots)
	s.mu.Unlock()

	for _, sl := range slots {
		if s.connected(sl.id) {
			sl.fn(v)
		}
	}
}

// Len returns the number of connected slots.
func (s *Signal[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// DisconnectAll removes every slot.
func (s *Signal[T]) DisconnectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = nil
}

func (s *Signal[T]) disconnect(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sl := range s.slots {
		if sl.id == id {
			s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
			return
		}
	}
}

func (s *Signal[T]) connected(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sl := range s.slots {
		if sl.id == id {
			return true
		}
	}
	return false
}
