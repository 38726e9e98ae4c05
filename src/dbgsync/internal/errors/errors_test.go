package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsMissingDependency(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "missing editor",
			err:  MissingEditorError,
			want: true,
		},
		{
			name: "missing service wrapped",
			err:  fmt.Errorf("creating handler: %w", MissingServiceError),
			want: true,
		},
		{
			name: "missing widget",
			err:  MissingWidgetError,
			want: true,
		},
		{
			name: "other error",
			err:  New("other"),
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsMissingDependency(tt.err))
		})
	}
}

func TestCustomErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "no session",
			err:  &NoSessionError{},
		},
		{
			name: "kernel",
			err:  &KernelError{Method: "debug/dumpCell", Err: New("boom")},
		},
		{
			name: "invalid line",
			err:  &InvalidLineError{SourceID: "/tmp/a.py", Line: -1},
		},
		{
			name: "unsupported widget",
			err:  &UnsupportedWidgetError{WidgetID: "w", HandlerType: "file"},
		},
		{
			name: "no session in context",
			err:  &NoSessionFoundError{},
		},
		{
			name: "widget not found",
			err:  &WidgetNotFoundError{WidgetID: "file:///a.py"},
		},
		{
			name: "cell not found",
			err:  &CellNotFoundError{NotebookID: "nb-1", Index: 4},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.err)
			assert.True(t, len(tt.err.Error()) > 0)
		})
	}
}

func TestKernelErrorUnwrap(t *testing.T) {
	inner := New("connection reset")
	err := fmt.Errorf("updating: %w", &KernelError{Method: "debug/setBreakpoints", Err: inner})
	assert.ErrorIs(t, err, inner)
}
