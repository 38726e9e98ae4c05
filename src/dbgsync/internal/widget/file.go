package widget

import (
	"maps"

	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/signal"
	"github.com/uber/dbg-sync/src/dbgsync/internal/texteditor"
)

// FileWidget shows a single file.
type FileWidget struct {
	base

	path   string
	cfg    entity.EditorConfig
	editor *texteditor.Editor
}

var _ entity.FileWidget = (*FileWidget)(nil)

// NewFileWidget creates a widget showing source for path.
func NewFileWidget(id, path, source string, cfg entity.EditorConfig) *FileWidget {
	return &FileWidget{
		base:   base{id: id, onDispose: signal.New[struct{}]()},
		path:   path,
		cfg:    maps.Clone(cfg),
		editor: texteditor.New(source, cfg),
	}
}

// Path returns the file path or URI.
func (f *FileWidget) Path() string { return f.path }

// Editor returns the file editor.
func (f *FileWidget) Editor() entity.Editor { return f.editor }

// TextEditor returns the concrete editor, for driving edits.
func (f *FileWidget) TextEditor() *texteditor.Editor { return f.editor }

// EditorConfig returns the baseline editor configuration.
func (f *FileWidget) EditorConfig() entity.EditorConfig { return maps.Clone(f.cfg) }

// Dispose emits the disposed signal, then disposes the editor.
func (f *FileWidget) Dispose() {
	if !f.markDisposed() {
		return
	}
	f.emitDisposed()
	f.editor.Dispose()
}
