package debuggerhandler

import (
	"context"
	stderrors "errors"
	"testing"

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

func newTestHandler(t *testing.T, typ Type, m *debugservicetest.Model) Handler {
	t.Helper()
	h, err := New(Params{Type: typ, Service: m.Mock(gomock.NewController(t)), Clock: clocktest.New()})
	require.NoError(t, err)
	t.Cleanup(h.Dispose)
	return h
}

func TestNew(t *testing.T) {
	_, err := New(Params{Type: TypeFile})
	assert.ErrorIs(t, err, errors.MissingServiceError)
}

func TestUpdateBindsNotebook(t *testing.T) {
	m := debugservicetest.NewModel(factory.Session("kernel-1"))
	scope := tally.NewTestScope("testing", make(map[string]string, 0))
	h, err := New(Params{Type: TypeNotebook, Service: m.Mock(gomock.NewController(t)), Clock: clocktest.New(), Stats: scope})
	require.NoError(t, err)
	defer h.Dispose()

	nb := widget.NewNotebook("nb-1", entity.EditorConfig{entity.OptionLineNumbers: false})
	cell := nb.AddCell(0, entity.CellTypeCode, "x = 1")

	require.NoError(t, h.Update(context.Background(), nb, m.Session()))
	assert.True(t, h.Has("nb-1"))
	assert.Equal(t, TypeNotebook, h.Type())
	assert.Equal(t, true, cell.Editor().Option(entity.OptionLineNumbers))

	require.NoError(t, h.Update(context.Background(), nb, m.Session()))
	assert.True(t, h.Has("nb-1"))

	gauges := scope.Snapshot().Gauges()
	assert.Equal(t, float64(1), gauges["testing.debugger_handler.widgets+type=notebook"].Value())
	assert.Equal(t, float64(1), gauges["testing.notebook_handler.cells+"].Value())
}

func TestUpdateWithoutSessionUnbinds(t *testing.T) {
	m := debugservicetest.NewModel(factory.Session("kernel-1"))
	h := newTestHandler(t, TypeFile, m)

	w := widget.NewFileWidget("file-1", "/src/main.py", "x = 1", entity.EditorConfig{entity.OptionLineNumbers: false})
	require.NoError(t, h.Update(context.Background(), w, m.Session()))
	require.True(t, h.Has("file-1"))

	require.NoError(t, h.Update(context.Background(), w, nil))
	assert.False(t, h.Has("file-1"))
	assert.Equal(t, false, w.Editor().Option(entity.OptionLineNumbers), "the widget configuration is restored")
}

func TestUpdateForInactiveSession(t *testing.T) {
	m := debugservicetest.NewModel(factory.Session("kernel-1"))
	h := newTestHandler(t, TypeFile, m)
	w := widget.NewFileWidget("file-1", "/src/main.py", "x = 1", nil)

	require.NoError(t, h.Update(context.Background(), w, factory.Session("kernel-2")))
	assert.False(t, h.Has("file-1"))

	m.SetSession(nil)
	require.NoError(t, h.Update(context.Background(), w, factory.Session("kernel-1")))
	assert.False(t, h.Has("file-1"))
}

func TestSessionChangeRebinds(t *testing.T) {
	s1 := factory.Session("kernel-1")
	m := debugservicetest.NewModel(s1)
	h := newTestHandler(t, TypeFile, m)

	w := widget.NewFileWidget("file-1", "/src/main.py", "x = 1\ny = 2", nil)
	require.NoError(t, h.Update(context.Background(), w, s1))

	s2 := factory.Session("kernel-2")
	m.SetSession(s2)
	w.TextEditor().ClickGutter(0)
	require.Empty(t, m.Updates(), "the old binding is stale")

	require.NoError(t, h.Update(context.Background(), w, s2))
	assert.True(t, h.Has("file-1"))

	w.TextEditor().ClickGutter(0)
	require.Len(t, m.Updates(), 1)
	assert.Equal(t, []int{1}, m.Get("/src/main.py").Lines())
	assert.Equal(t, []int{0}, w.Editor().MarkedLines())
}

func TestWidgetDisposedUnbinds(t *testing.T) {
	m := debugservicetest.NewModel(factory.Session("kernel-1"))
	h := newTestHandler(t, TypeConsole, m)

	console := widget.NewConsole("console-1", nil)
	require.NoError(t, h.Update(context.Background(), console, m.Session()))
	require.True(t, h.Has("console-1"))

	console.Dispose()
	assert.False(t, h.Has("console-1"))

	require.NoError(t, h.Update(context.Background(), console, m.Session()))
	assert.False(t, h.Has("console-1"), "disposed widgets are not bound")
}

func TestUnsupportedWidget(t *testing.T) {
	m := debugservicetest.NewModel(factory.Session("kernel-1"))
	h := newTestHandler(t, TypeNotebook, m)

	err := h.Update(context.Background(), widget.NewConsole("console-1", nil), m.Session())
	var unsupported *errors.UnsupportedWidgetError
	require.True(t, stderrors.As(err, &unsupported))
	assert.Equal(t, "console-1", unsupported.WidgetID)
	assert.Equal(t, "notebook", unsupported.HandlerType)
	assert.False(t, h.Has("console-1"))

	assert.ErrorIs(t, h.Update(context.Background(), nil, m.Session()), errors.MissingWidgetError)
}

func TestUpdateCanceled(t *testing.T) {
	m := debugservicetest.NewModel(factory.Session("kernel-1"))
	h := newTestHandler(t, TypeFile, m)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := h.Update(ctx, widget.NewFileWidget("file-1", "/src/main.py", "x = 1", nil), m.Session())
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, h.Has("file-1"))
}

func TestRemoveAndDispose(t *testing.T) {
	m := debugservicetest.NewModel(factory.Session("kernel-1"))
	h := newTestHandler(t, TypeFile, m)

	a := widget.NewFileWidget("file-a", "/src/a.py", "a = 1", nil)
	b := widget.NewFileWidget("file-b", "/src/b.py", "b = 1", nil)
	require.NoError(t, h.Update(context.Background(), a, m.Session()))
	require.NoError(t, h.Update(context.Background(), b, m.Session()))

	h.Remove("file-a")
	h.Remove("unknown")
	assert.False(t, h.Has("file-a"))
	assert.True(t, h.Has("file-b"))

	h.Dispose()
	h.Dispose()
	assert.False(t, h.Has("file-b"))
	assert.Equal(t, []string{}, b.Editor().Option(entity.OptionGutters))

	require.NoError(t, h.Update(context.Background(), a, m.Session()))
	assert.False(t, h.Has("file-a"))
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name   string
		widget entity.Widget
		want   Type
	}{
		{
			name:   "notebook",
			widget: widget.NewNotebook("nb-1", nil),
			want:   TypeNotebook,
		},
		{
			name:   "console",
			widget: widget.NewConsole("console-1", nil),
			want:   TypeConsole,
		},
		{
			name:   "file",
			widget: widget.NewFileWidget("file-1", "/src/main.py", "", nil),
			want:   TypeFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TypeOf(tt.widget)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
