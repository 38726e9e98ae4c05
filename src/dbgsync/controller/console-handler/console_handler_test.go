package consolehandler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/controller/debug-service/debugservicetest"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/factory"
	"github.com/uber/dbg-sync/src/dbgsync/internal/clock/clocktest"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"github.com/uber/dbg-sync/src/dbgsync/internal/widget"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := debugservicetest.NewModel(factory.Session("kernel-1")).Mock(ctrl)

	_, err := New(Params{Service: svc})
	assert.ErrorIs(t, err, errors.MissingWidgetError)

	_, err = New(Params{Console: widget.NewConsole("console-1", nil)})
	assert.ErrorIs(t, err, errors.MissingServiceError)
}

func TestPromptAndExecutedCells(t *testing.T) {
	ctrl := gomock.NewController(t)
	c := clocktest.New()
	m := debugservicetest.NewModel(factory.Session("kernel-1"))
	scope := tally.NewTestScope("testing", make(map[string]string, 0))

	console := widget.NewConsole("console-1", nil)
	h, err := New(Params{Service: m.Mock(ctrl), Console: console, Clock: c, Stats: scope, Debounce: time.Second})
	require.NoError(t, err)
	defer h.Dispose()

	prompt := console.Prompt()
	promptHandler, ok := h.Handlers()[prompt.Model().ID()]
	require.True(t, ok)

	prompt.TextEditor().SetText("x = 1\ny = x + 1")
	c.Advance(time.Second)
	prompt.TextEditor().ClickGutter(1)
	assert.Equal(t, []int{2}, m.Get(m.Hasher.CodeID("x = 1\ny = x + 1")).Lines())

	executed := console.Execute()
	require.Same(t, prompt, executed)

	handlers := h.Handlers()
	require.Len(t, handlers, 2)
	assert.Same(t, promptHandler, handlers[executed.Model().ID()], "the executed prompt keeps its handler")
	assert.Contains(t, handlers, console.Prompt().Model().ID())
	assert.Equal(t, []int{1}, executed.Editor().MarkedLines())
	assert.Equal(t, float64(2), scope.Snapshot().Gauges()["testing.console_handler.cells+"].Value())

	console.Clear()
	assert.Len(t, h.Handlers(), 1)
	assert.True(t, promptHandler.IsDisposed())
}

func TestExistingCellsAreBound(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := debugservicetest.NewModel(factory.Session("kernel-1"))

	console := widget.NewConsole("console-1", nil)
	console.Prompt().TextEditor().SetText("print(1)")
	console.Execute()

	h, err := New(Params{Service: m.Mock(ctrl), Console: console, Clock: clocktest.New()})
	require.NoError(t, err)
	defer h.Dispose()

	assert.Len(t, h.Handlers(), 2)
}

func TestDispose(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := debugservicetest.NewModel(factory.Session("kernel-1"))

	console := widget.NewConsole("console-1", nil)
	h, err := New(Params{Service: m.Mock(ctrl), Console: console, Clock: clocktest.New()})
	require.NoError(t, err)

	prompt := console.Prompt()
	require.Equal(t, []string{entity.GutterBreakpoints}, prompt.Editor().Option(entity.OptionGutters))

	h.Dispose()
	h.Dispose()
	assert.True(t, h.IsDisposed())
	assert.Empty(t, h.Handlers())
	assert.Equal(t, []string{}, prompt.Editor().Option(entity.OptionGutters))

	console.Execute()
	assert.Empty(t, h.Handlers())
	console.Dispose()
}
