package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
)

func TestConsoleExecute(t *testing.T) {
	c := NewConsole("console", nil)
	first := c.Prompt()
	require.NotNil(t, first)
	first.TextEditor().SetText("print(1)")

	var prompts []entity.Cell
	c.OnPromptCellCreated(func(cell entity.Cell) { prompts = append(prompts, cell) })
	var changes []entity.CellListChange
	c.Cells().OnChanged(func(ch entity.CellListChange) { changes = append(changes, ch) })

	executed := c.Execute()
	assert.Same(t, first, executed)
	assert.Equal(t, []string{first.Model().ID()}, ids(c.Widgets()))
	require.Len(t, prompts, 1)
	assert.Same(t, c.Prompt(), prompts[0])
	assert.NotSame(t, first, c.Prompt())
	assert.Equal(t, "", c.PromptCell().Editor().Text())

	require.Len(t, changes, 1)
	assert.Equal(t, entity.CellListAdd, changes[0].Type)
	assert.Equal(t, first.Model().ID(), changes[0].NewValues[0].ID())

	assert.Same(t, first, c.Cell(0))
	assert.Nil(t, c.Cell(1), "the prompt is not an executed cell")
	assert.Nil(t, c.Cell(-1))
}

func TestConsoleClear(t *testing.T) {
	c := NewConsole("console", nil)
	a := c.Execute()
	b := c.Execute()

	c.Clear()
	assert.True(t, a.IsDisposed())
	assert.True(t, b.IsDisposed())
	assert.Empty(t, c.Widgets())
	assert.Equal(t, 0, c.Cells().Len())
}

func TestConsoleDispose(t *testing.T) {
	c := NewConsole("console", nil)
	executed := c.Execute()
	prompt := c.Prompt()

	disposed := false
	c.OnDisposed(func() { disposed = true })
	c.Dispose()

	assert.True(t, disposed)
	assert.True(t, executed.IsDisposed())
	assert.True(t, prompt.IsDisposed())
	assert.Nil(t, c.PromptCell())
	assert.Nil(t, c.Execute())
}

func TestFileWidget(t *testing.T) {
	cfg := entity.EditorConfig{entity.OptionLineNumbers: true}
	f := NewFileWidget("file", "/src/main.py", "x = 1\ny = 2", cfg)

	assert.Equal(t, "file", f.ID())
	assert.Equal(t, "/src/main.py", f.Path())
	assert.Equal(t, 2, f.Editor().LineCount())
	assert.Equal(t, cfg, f.EditorConfig())

	disposed := false
	f.OnDisposed(func() { disposed = true })
	f.Dispose()
	assert.True(t, disposed)
	assert.True(t, f.IsDisposed())
	assert.True(t, f.Editor().IsDisposed())
}
