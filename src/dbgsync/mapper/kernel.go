package mapper

import (
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/model"
)

// BreakpointsToSetBreakpointsRequest builds the kernel request replacing the breakpoints of sourcePath.
func BreakpointsToSetBreakpointsRequest(sourcePath string, bps entity.Breakpoints) *model.SetBreakpointsRequest {
	lines := make([]model.SourceBreakpoint, 0, len(bps))
	for _, bp := range bps {
		lines = append(lines, model.SourceBreakpoint{Line: bp.Line})
	}
	return &model.SetBreakpointsRequest{
		Source:         model.KernelSource{Path: sourcePath},
		Breakpoints:    lines,
		SourceModified: false,
	}
}

// SetBreakpointsResponseToBreakpoints merges the kernel's answer into the requested breakpoints.
// The kernel answers in request order; a missing or short answer leaves the request untouched.
func SetBreakpointsResponseToBreakpoints(requested entity.Breakpoints, resp *model.SetBreakpointsResponse) entity.Breakpoints {
	result := requested.Clone()
	if resp == nil {
		return result
	}
	for i := range result {
		if i >= len(resp.Breakpoints) {
			break
		}
		kbp := resp.Breakpoints[i]
		result[i].ID = kbp.ID
		result[i].Verified = kbp.Verified
		result[i].Message = kbp.Message
		if kbp.Line > 0 {
			result[i].Line = kbp.Line
		}
	}
	return result.Dedup()
}

// DebugInfoToHashParams extracts the kernel hash parameters.
func DebugInfoToHashParams(resp *model.DebugInfoResponse) *entity.HashParams {
	if resp == nil || resp.TmpFilePrefix == "" {
		return nil
	}
	return &entity.HashParams{
		Seed:          resp.HashSeed,
		TmpFilePrefix: resp.TmpFilePrefix,
		TmpFileSuffix: resp.TmpFileSuffix,
	}
}

// DebugInfoToBreakpoints maps the breakpoints the kernel holds to entity breakpoints keyed by source.
// Restored breakpoints are verified and named after sourceName.
func DebugInfoToBreakpoints(resp *model.DebugInfoResponse, sourceName string) map[string]entity.Breakpoints {
	result := make(map[string]entity.Breakpoints)
	if resp == nil {
		return result
	}
	for _, src := range resp.Breakpoints {
		bps := make(entity.Breakpoints, 0, len(src.Breakpoints))
		for _, bp := range src.Breakpoints {
			bps = append(bps, entity.Breakpoint{
				Line:     bp.Line,
				Verified: true,
				Source:   entity.Source{Name: sourceName, Path: src.Source},
			})
		}
		result[src.Source] = append(result[src.Source], bps...).Dedup()
	}
	return result
}
