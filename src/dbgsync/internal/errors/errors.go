package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// MissingEditorError reports that a handler was constructed without an editor.
	MissingEditorError = New("editor is required")
	// MissingWidgetError reports that a widget handler was constructed without its widget.
	MissingWidgetError = New("widget is required")
	// MissingServiceError reports that a handler was constructed without a debug service.
	MissingServiceError = New("debug service is required")
	// NotConnectedError reports that the kernel gateway has no open connection.
	NotConnectedError = New("kernel gateway is not connected")
)

// IsMissingDependency reports whether the error is a construction error from the caller.
func IsMissingDependency(e error) bool {
	return stderr.Is(e, MissingEditorError) ||
		stderr.Is(e, MissingWidgetError) ||
		stderr.Is(e, MissingServiceError)
}
