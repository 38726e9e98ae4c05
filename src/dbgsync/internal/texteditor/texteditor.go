// Package texteditor is an in-process implementation of entity.Editor.
//
// Gutter markers and line highlights are attached to lines rather than offsets: when the
// text changes, a line diff between the old and new text moves them along with the line
// they were placed on. A marker on a line that is removed outright is dropped.
package texteditor

import (
	"slices"
	"strings"
	"sync"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/signal"
)

// Editor is a line-based text editor with a breakpoint gutter.
type Editor struct {
	mu           sync.Mutex
	lines        []string
	options      entity.EditorConfig
	markers      map[int]struct{}
	highlights   map[int]struct{}
	scrollTarget int
	disposed     bool

	gutterClicked  *signal.Signal[int]
	contentChanged *signal.Signal[struct{}]
	dmp            *diffmatchpatch.DiffMatchPatch
}

var _ entity.Editor = (*Editor)(nil)

// New creates an editor holding text, configured with cfg.
func New(text string, cfg entity.EditorConfig) *Editor {
	e := &Editor{
		lines:          splitLines(text),
		options:        make(entity.EditorConfig),
		markers:        make(map[int]struct{}),
		highlights:     make(map[int]struct{}),
		scrollTarget:   -1,
		gutterClicked:  signal.New[int](),
		contentChanged: signal.New[struct{}](),
		dmp:            diffmatchpatch.New(),
	}
	e.SetOptions(cfg)
	return e
}

// Text returns the full current source.
func (e *Editor) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return strings.Join(e.lines, "\n")
}

// LineCount returns the number of lines. An empty document has one line.
func (e *Editor) LineCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.lines)
}

// Line returns the text of line, or "" if it does not exist.
func (e *Editor) Line(line int) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if line < 0 || line >= len(e.lines) {
		return ""
	}
	return e.lines[line]
}

// SetText replaces the content, moving markers and highlights with their lines.
func (e *Editor) SetText(text string) {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	oldText := strings.Join(e.lines, "\n")
	if oldText == text {
		e.mu.Unlock()
		return
	}

	mapping := e.lineMapping(oldText, text)
	e.lines = splitLines(text)
	e.markers = remap(e.markers, mapping)
	e.highlights = remap(e.highlights, mapping)
	e.mu.Unlock()

	e.contentChanged.Emit(struct{}{})
}

// InsertLine inserts text as a new line before line. A line equal to LineCount appends.
func (e *Editor) InsertLine(line int, text string) {
	lines := e.snapshot()
	line = max(0, min(line, len(lines)))
	lines = slices.Insert(lines, line, text)
	e.SetText(strings.Join(lines, "\n"))
}

// DeleteLine removes line.
func (e *Editor) DeleteLine(line int) {
	lines := e.snapshot()
	if line < 0 || line >= len(lines) {
		return
	}
	lines = slices.Delete(lines, line, line+1)
	e.SetText(strings.Join(lines, "\n"))
}

// ReplaceLine replaces the content of line in place.
func (e *Editor) ReplaceLine(line int, text string) {
	lines := e.snapshot()
	if line < 0 || line >= len(lines) {
		return
	}
	lines[line] = text
	e.SetText(strings.Join(lines, "\n"))
}

// Option returns the value of an option, or nil.
func (e *Editor) Option(name string) any {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.options[name]
}

// SetOption sets a single option.
func (e *Editor) SetOption(name string, value any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.options[name] = cloneOption(value)
}

// SetOptions sets every option in cfg, leaving the others untouched.
func (e *Editor) SetOptions(cfg entity.EditorConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for name, value := range cfg {
		e.options[name] = cloneOption(value)
	}
}

// SetLineMarker places or removes the breakpoint marker on line.
func (e *Editor) SetLineMarker(line int, on bool) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.disposed || line < 0 || line >= len(e.lines) {
		return false
	}
	if on {
		e.markers[line] = struct{}{}
	} else {
		delete(e.markers, line)
	}
	return true
}

// MarkedLines returns the lines carrying a breakpoint marker, ascending.
func (e *Editor) MarkedLines() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return sortedKeys(e.markers)
}

// ClearMarkers removes every breakpoint marker.
func (e *Editor) ClearMarkers() {
	e.mu.Lock()
	defer e.mu.Unlock()
	clear(e.markers)
}

// HighlightLine adds the current-line highlight to line.
func (e *Editor) HighlightLine(line int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed || line < 0 || line >= len(e.lines) {
		return
	}
	e.highlights[line] = struct{}{}
}

// ClearHighlight removes the highlight from every line.
func (e *Editor) ClearHighlight() {
	e.mu.Lock()
	defer e.mu.Unlock()
	clear(e.highlights)
}

// HighlightedLines returns the highlighted lines, ascending.
func (e *Editor) HighlightedLines() []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return sortedKeys(e.highlights)
}

// ScrollIntoViewCentered records line as the center of the viewport.
func (e *Editor) ScrollIntoViewCentered(line int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if line < 0 || line >= len(e.lines) {
		return
	}
	e.scrollTarget = line
}

// ScrollTarget returns the line last scrolled into view, or -1.
func (e *Editor) ScrollTarget() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scrollTarget
}

// OnGutterClick registers fn for clicks in the breakpoint gutter.
func (e *Editor) OnGutterClick(fn func(line int)) (disconnect func()) {
	return e.gutterClicked.Connect(fn)
}

// OnContentChanged registers fn for content changes.
func (e *Editor) OnContentChanged(fn func()) (disconnect func()) {
	return e.contentChanged.Connect(func(struct{}) { fn() })
}

// ClickGutter simulates a click in the breakpoint gutter at line.
func (e *Editor) ClickGutter(line int) {
	if e.IsDisposed() {
		return
	}
	e.gutterClicked.Emit(line)
}

// Dispose detaches every listener. The editor keeps its content but ignores further edits.
func (e *Editor) Dispose() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	e.disposed = true
	e.mu.Unlock()

	e.gutterClicked.DisconnectAll()
	e.contentChanged.DisconnectAll()
}

// IsDisposed reports whether Dispose has been called.
func (e *Editor) IsDisposed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disposed
}

func (e *Editor) snapshot() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.lines)
}

// lineMapping maps old line numbers to new ones for every line that survives the edit.
// Replaced lines (a deletion directly followed by an insertion) map pairwise, so editing a
// line in place keeps its marker.
func (e *Editor) lineMapping(oldText, newText string) map[int]int {
	// A trailing newline makes every line, including the last, end in "\n".
	a, b, lineArray := e.dmp.DiffLinesToChars(oldText+"\n", newText+"\n")
	diffs := e.dmp.DiffCharsToLines(e.dmp.DiffMain(a, b, false), lineArray)

	mapping := make(map[int]int)
	oldLine, newLine := 0, 0
	for i := 0; i < len(diffs); {
		if diffs[i].Type == diffmatchpatch.DiffEqual {
			n := strings.Count(diffs[i].Text, "\n")
			for k := 0; k < n; k++ {
				mapping[oldLine+k] = newLine + k
			}
			oldLine += n
			newLine += n
			i++
			continue
		}

		deleted, inserted := 0, 0
		for ; i < len(diffs) && diffs[i].Type != diffmatchpatch.DiffEqual; i++ {
			n := strings.Count(diffs[i].Text, "\n")
			if diffs[i].Type == diffmatchpatch.DiffDelete {
				deleted += n
			} else {
				inserted += n
			}
		}
		for k := 0; k < deleted && k < inserted; k++ {
			mapping[oldLine+k] = newLine + k
		}
		oldLine += deleted
		newLine += inserted
	}
	return mapping
}

func remap(lines map[int]struct{}, mapping map[int]int) map[int]struct{} {
	result := make(map[int]struct{}, len(lines))
	for line := range lines {
		if to, ok := mapping[line]; ok {
			result[to] = struct{}{}
		}
	}
	return result
}

func sortedKeys(m map[int]struct{}) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func cloneOption(value any) any {
	if v, ok := value.([]string); ok {
		return slices.Clone(v)
	}
	return value
}
