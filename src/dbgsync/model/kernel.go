package model

// DumpCellRequest asks the kernel to write code to its temporary source file.
type DumpCellRequest struct {
	Code string `json:"code"`
}

// DumpCellResponse carries the path the kernel wrote the code to.
type DumpCellResponse struct {
	SourcePath string `json:"sourcePath"`
}

// KernelSource identifies a source in kernel requests.
type KernelSource struct {
	Name string `json:"name,omitempty"`
	Path string `json:"path"`
}

// SourceBreakpoint is a requested breakpoint location.
type SourceBreakpoint struct {
	Line int `json:"line"`
}

// SetBreakpointsRequest replaces every breakpoint of a source.
type SetBreakpointsRequest struct {
	Source         KernelSource       `json:"source"`
	Breakpoints    []SourceBreakpoint `json:"breakpoints"`
	SourceModified bool               `json:"sourceModified"`
}

// KernelBreakpoint is a breakpoint as reported by the kernel.
type KernelBreakpoint struct {
	ID       int           `json:"id,omitempty"`
	Verified bool          `json:"verified"`
	Line     int           `json:"line"`
	Message  string        `json:"message,omitempty"`
	Source   *KernelSource `json:"source,omitempty"`
}

// SetBreakpointsResponse lists the breakpoints accepted by the kernel, in request order.
type SetBreakpointsResponse struct {
	Breakpoints []KernelBreakpoint `json:"breakpoints"`
}

// DebugInfoRequest has no arguments.
type DebugInfoRequest struct{}

// DebugInfoSource lists the breakpoints the kernel holds for one source.
type DebugInfoSource struct {
	Source      string             `json:"source"`
	Breakpoints []SourceBreakpoint `json:"breakpoints"`
}

// DebugInfoResponse describes the kernel debugger state.
type DebugInfoResponse struct {
	IsStarted      bool              `json:"isStarted"`
	HashMethod     string            `json:"hashMethod"`
	HashSeed       uint32            `json:"hashSeed"`
	TmpFilePrefix  string            `json:"tmpFilePrefix"`
	TmpFileSuffix  string            `json:"tmpFileSuffix"`
	Breakpoints    []DebugInfoSource `json:"breakpoints"`
	StoppedThreads []int             `json:"stoppedThreads"`
}
