package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
)

func ids(cells []entity.Cell) []string {
	result := make([]string, 0, len(cells))
	for _, c := range cells {
		result = append(result, c.Model().ID())
	}
	return result
}

func TestNotebookAddCell(t *testing.T) {
	nb := NewNotebook("nb", entity.EditorConfig{entity.OptionLineNumbers: false})
	var changes []entity.CellListChange
	nb.Cells().OnChanged(func(c entity.CellListChange) { changes = append(changes, c) })
	var activated []entity.Cell
	nb.OnActiveCellChanged(func(c entity.Cell) { activated = append(activated, c) })

	md := nb.AddCell(0, entity.CellTypeMarkdown, "# title")
	code := nb.AddCell(1, entity.CellTypeCode, "x = 1")
	first := nb.AddCell(0, entity.CellTypeCode, "import os")

	assert.Equal(t, []string{first.Model().ID(), md.Model().ID(), code.Model().ID()}, ids(nb.Widgets()))
	assert.Equal(t, 3, nb.Cells().Len())
	require.Len(t, changes, 3)
	assert.Equal(t, entity.CellListAdd, changes[2].Type)
	assert.Equal(t, 0, changes[2].NewIndex)

	require.Len(t, activated, 1)
	assert.Same(t, md, activated[0])
	assert.Same(t, md, nb.ActiveCell(), "active cell follows inserts above it")
	assert.Equal(t, 1, nb.ActiveCellIndex())
	assert.Equal(t, false, code.Editor().Option(entity.OptionLineNumbers))
}

func TestNotebookRemoveCell(t *testing.T) {
	nb := NewNotebook("nb", nil)
	a := nb.AddCell(0, entity.CellTypeCode, "a")
	b := nb.AddCell(1, entity.CellTypeCode, "b")

	disposed := false
	a.OnDisposed(func() { disposed = true })
	var activated []entity.Cell
	nb.OnActiveCellChanged(func(c entity.Cell) { activated = append(activated, c) })

	nb.RemoveCell(0)
	assert.True(t, disposed)
	assert.True(t, a.IsDisposed())
	assert.True(t, a.Editor().IsDisposed())
	assert.Equal(t, []string{b.Model().ID()}, ids(nb.Widgets()))
	require.Len(t, activated, 1)
	assert.Same(t, b, activated[0])

	nb.RemoveCell(5)
	nb.RemoveCell(0)
	assert.Nil(t, nb.ActiveCell())
	assert.Equal(t, -1, nb.ActiveCellIndex())
}

func TestNotebookMoveCell(t *testing.T) {
	nb := NewNotebook("nb", nil)
	a := nb.AddCell(0, entity.CellTypeCode, "a")
	b := nb.AddCell(1, entity.CellTypeCode, "b")
	c := nb.AddCell(2, entity.CellTypeCode, "c")

	var changes []entity.CellListChange
	nb.Cells().OnChanged(func(ch entity.CellListChange) { changes = append(changes, ch) })

	nb.MoveCell(1, 0)
	assert.Equal(t, []string{b.Model().ID(), a.Model().ID(), c.Model().ID()}, ids(nb.Widgets()))
	assert.Same(t, b, nb.Cell(0))
	assert.Same(t, a, nb.ActiveCell())
	assert.Equal(t, 1, nb.ActiveCellIndex())

	require.Len(t, changes, 1)
	assert.Equal(t, entity.CellListMove, changes[0].Type)
	assert.Equal(t, 1, changes[0].OldIndex)
	assert.Equal(t, 0, changes[0].NewIndex)
	assert.Equal(t, b.Model().ID(), changes[0].NewValues[0].ID())
	assert.False(t, b.IsDisposed())
}

func TestNotebookChangeCellType(t *testing.T) {
	nb := NewNotebook("nb", nil)
	a := nb.AddCell(0, entity.CellTypeCode, "x = 1")

	var activated []entity.Cell
	nb.OnActiveCellChanged(func(c entity.Cell) { activated = append(activated, c) })

	md := nb.ChangeCellType(0, entity.CellTypeMarkdown)
	require.NotNil(t, md)
	assert.True(t, a.IsDisposed())
	assert.NotEqual(t, a.Model().ID(), md.Model().ID())
	assert.Equal(t, entity.CellTypeMarkdown, md.Model().Type())
	assert.Equal(t, "x = 1", md.Editor().Text())
	require.Len(t, activated, 1)
	assert.Same(t, md, activated[0])

	assert.Nil(t, nb.ChangeCellType(3, entity.CellTypeCode))
}

func TestNotebookSetActiveCellIndex(t *testing.T) {
	nb := NewNotebook("nb", nil)
	nb.SetActiveCellIndex(0)
	assert.Equal(t, -1, nb.ActiveCellIndex())

	nb.AddCell(0, entity.CellTypeCode, "a")
	last := nb.AddCell(1, entity.CellTypeCode, "b")

	count := 0
	nb.OnActiveCellChanged(func(entity.Cell) { count++ })
	nb.SetActiveCellIndex(10)
	nb.SetActiveCellIndex(1)
	assert.Same(t, last, nb.ActiveCell())
	assert.Equal(t, 1, count)
}

func TestNotebookDispose(t *testing.T) {
	nb := NewNotebook("nb", nil)
	a := nb.AddCell(0, entity.CellTypeCode, "a")

	disposed := 0
	nb.OnDisposed(func() { disposed++ })
	nb.Dispose()
	nb.Dispose()

	assert.Equal(t, 1, disposed)
	assert.True(t, nb.IsDisposed())
	assert.True(t, a.IsDisposed())
	assert.Empty(t, nb.Widgets())
	assert.Equal(t, "nb", nb.ID())
}
