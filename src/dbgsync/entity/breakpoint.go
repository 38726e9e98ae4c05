package entity

import (
	"slices"
)

// Source identifies where a breakpoint is registered.
type Source struct {
	// Name is the session name when the source has no path.
	Name string `json:"name,omitempty"`
	// Path is the real path of the source, or the identity assigned by the debug service.
	Path string `json:"path,omitempty"`
}

// Breakpoint is a line at which the debug session should pause.
type Breakpoint struct {
	ID int `json:"id,omitempty"`
	// Line is 1-based.
	Line int `json:"line"`
	// Verified is owned by the debug service once the breakpoint comes back from the kernel.
	Verified bool   `json:"verified"`
	Source   Source `json:"source"`
	Message  string `json:"message,omitempty"`
}

// Breakpoints is the breakpoint list of a single source identity.
type Breakpoints []Breakpoint

// HasLine reports whether a breakpoint exists at the given 1-based line.
func (b Breakpoints) HasLine(line int) bool {
	return slices.ContainsFunc(b, func(bp Breakpoint) bool { return bp.Line == line })
}

// WithoutLine returns a copy of the list with every breakpoint at line removed.
func (b Breakpoints) WithoutLine(line int) Breakpoints {
	result := make(Breakpoints, 0, len(b))
	for _, bp := range b {
		if bp.Line != line {
			result = append(result, bp)
		}
	}
	return result
}

// Lines returns the 1-based lines of the list in order.
func (b Breakpoints) Lines() []int {
	lines := make([]int, len(b))
	for i, bp := range b {
		lines[i] = bp.Line
	}
	return lines
}

// Dedup returns a copy keeping only the first breakpoint for each line.
func (b Breakpoints) Dedup() Breakpoints {
	seen := make(map[int]struct{}, len(b))
	result := make(Breakpoints, 0, len(b))
	for _, bp := range b {
		if _, ok := seen[bp.Line]; ok {
			continue
		}
		seen[bp.Line] = struct{}{}
		result = append(result, bp)
	}
	return result
}

// Clone returns an independent copy of the list. A nil list stays nil.
func (b Breakpoints) Clone() Breakpoints {
	if b == nil {
		return nil
	}
	return slices.Clone(b)
}
