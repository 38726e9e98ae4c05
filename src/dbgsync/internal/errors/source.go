package errors

import "fmt"

// InvalidLineError indicates that a breakpoint line is outside the source.
type InvalidLineError struct {
	SourceID string
	Line     int
}

// Error is an implementation of the error interface.
func (n *InvalidLineError) Error() string {
	return fmt.Sprintf("invalid line %d for source %q", n.Line, n.SourceID)
}

// UnsupportedWidgetError indicates that a widget cannot be bound by a debugger handler of the given type.
type UnsupportedWidgetError struct {
	WidgetID    string
	HandlerType string
}

// Error is an implementation of the error interface.
func (n *UnsupportedWidgetError) Error() string {
	return fmt.Sprintf("widget %q is not supported by the %s handler", n.WidgetID, n.HandlerType)
}

// WidgetNotFoundError indicates that a connection has no open widget with the given id.
type WidgetNotFoundError struct {
	WidgetID string
}

// Error is an implementation of the error interface.
func (n *WidgetNotFoundError) Error() string {
	return fmt.Sprintf("widget %q is not open", n.WidgetID)
}

// CellNotFoundError indicates that a notebook has no cell at the given index.
type CellNotFoundError struct {
	NotebookID string
	Index      int
}

// Error is an implementation of the error interface.
func (n *CellNotFoundError) Error() string {
	return fmt.Sprintf("notebook %q has no cell %d", n.NotebookID, n.Index)
}
