package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakpoints(t *testing.T) {
	bps := Breakpoints{{Line: 3}, {Line: 5}, {Line: 3, Verified: true}}

	t.Run("has line", func(t *testing.T) {
		assert.True(t, bps.HasLine(5))
		assert.False(t, bps.HasLine(4))
	})

	t.Run("without line", func(t *testing.T) {
		result := bps.WithoutLine(3)
		assert.Equal(t, []int{5}, result.Lines())
		assert.Len(t, bps, 3, "original list is untouched")
	})

	t.Run("dedup keeps first", func(t *testing.T) {
		result := bps.Dedup()
		assert.Equal(t, []int{3, 5}, result.Lines())
		assert.False(t, result[0].Verified)
	})

	t.Run("clone", func(t *testing.T) {
		var empty Breakpoints
		assert.Nil(t, empty.Clone())

		c := bps.Clone()
		c[0].Line = 10
		assert.Equal(t, 3, bps[0].Line)
	})
}

func TestHasMarker(t *testing.T) {
	e := &markedEditor{lines: []int{1, 4}}
	assert.True(t, HasMarker(e, 4))
	assert.False(t, HasMarker(e, 2))
}

type markedEditor struct {
	Editor
	lines []int
}

func (m *markedEditor) MarkedLines() []int { return m.lines }
