package entity

const (
	// OptionLineNumbers toggles line numbers in an editor. Value is a bool.
	OptionLineNumbers = "lineNumbers"
	// OptionGutters lists the gutters shown by an editor. Value is a []string.
	OptionGutters = "gutters"

	// GutterBreakpoints is the gutter in which breakpoint markers are placed.
	GutterBreakpoints = "breakpoints"
)

// EditorConfig is a set of editor options, used as the baseline an editor is restored to.
type EditorConfig map[string]any

// Editor is the capability surface the synchronization core needs from a code editor.
// Lines are 0-based at this boundary.
type Editor interface {
	// Text returns the full current source.
	Text() string
	LineCount() int

	Option(name string) any
	SetOption(name string, value any)
	SetOptions(cfg EditorConfig)

	// SetLineMarker places or removes the breakpoint gutter marker at line.
	// It returns false when the line does not exist.
	SetLineMarker(line int, on bool) bool
	// MarkedLines returns the lines currently carrying a breakpoint marker, in ascending order.
	// Markers follow their line as text is inserted or deleted above them.
	MarkedLines() []int
	ClearMarkers()

	HighlightLine(line int)
	ClearHighlight()
	HighlightedLines() []int
	ScrollIntoViewCentered(line int)

	// OnGutterClick registers fn for clicks in the breakpoint gutter.
	OnGutterClick(fn func(line int)) (disconnect func())
	// OnContentChanged registers fn for every content change. Callers debounce as needed.
	OnContentChanged(fn func()) (disconnect func())

	IsDisposed() bool
}

// HasMarker reports whether line currently carries a breakpoint marker.
func HasMarker(e Editor, line int) bool {
	for _, l := range e.MarkedLines() {
		if l == line {
			return true
		}
	}
	return false
}
