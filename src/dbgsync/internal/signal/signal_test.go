package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitOrder(t *testing.T) {
	s := New[int]()
	var got []string
	s.Connect(func(v int) { got = append(got, "first") })
	s.Connect(func(v int) { got = append(got, "second") })

	s.Emit(1)
	assert.Equal(t, []string{"first", "second"}, got)
	assert.Equal(t, 2, s.Len())
}

func TestDisconnect(t *testing.T) {
	s := New[string]()
	calls := 0
	disconnect := s.Connect(func(string) { calls++ })

	s.Emit("a")
	disconnect()
	disconnect()
	s.Emit("b")

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, s.Len())
}

func TestDisconnectDuringEmit(t *testing.T) {
	s := New[struct{}]()
	secondCalls := 0
	var disconnectSecond func()
	s.Connect(func(struct{}) { disconnectSecond() })
	disconnectSecond = s.Connect(func(struct{}) { secondCalls++ })

	s.Emit(struct{}{})
	assert.Equal(t, 0, secondCalls, "slot removed by an earlier slot is skipped")
}

func TestConnectDuringEmit(t *testing.T) {
	s := New[int]()
	lateCalls := 0
	s.Connect(func(int) {
		s.Connect(func(int) { lateCalls++ })
	})

	s.Emit(1)
	assert.Equal(t, 0, lateCalls)
	s.Emit(2)
	assert.Equal(t, 1, lateCalls)
}

func TestDisconnectAll(t *testing.T) {
	s := New[int]()
	calls := 0
	s.Connect(func(int) { calls++ })
	s.DisconnectAll()
	s.Emit(1)
	assert.Equal(t, 0, calls)
}
