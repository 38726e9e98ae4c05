package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/model"
)

func TestBreakpointsToSetBreakpointsRequest(t *testing.T) {
	req := BreakpointsToSetBreakpointsRequest("/tmp/ipykernel/1.py", entity.Breakpoints{{Line: 2}, {Line: 5}})
	assert.Equal(t, "/tmp/ipykernel/1.py", req.Source.Path)
	assert.Equal(t, []model.SourceBreakpoint{{Line: 2}, {Line: 5}}, req.Breakpoints)

	empty := BreakpointsToSetBreakpointsRequest("/a.py", nil)
	assert.NotNil(t, empty.Breakpoints)
	assert.Empty(t, empty.Breakpoints)
}

func TestSetBreakpointsResponseToBreakpoints(t *testing.T) {
	requested := entity.Breakpoints{
		{Line: 2, Verified: true, Source: entity.Source{Name: "k"}},
		{Line: 5, Verified: true, Source: entity.Source{Name: "k"}},
	}

	tests := []struct {
		name string
		resp *model.SetBreakpointsResponse
		want entity.Breakpoints
	}{
		{
			name: "nil response",
			resp: nil,
			want: requested,
		},
		{
			name: "verification merged",
			resp: &model.SetBreakpointsResponse{Breakpoints: []model.KernelBreakpoint{
				{ID: 1, Verified: true, Line: 2},
				{ID: 2, Verified: false, Line: 5, Message: "no code"},
			}},
			want: entity.Breakpoints{
				{ID: 1, Line: 2, Verified: true, Source: entity.Source{Name: "k"}},
				{ID: 2, Line: 5, Verified: false, Message: "no code", Source: entity.Source{Name: "k"}},
			},
		},
		{
			name: "kernel moved a breakpoint onto another",
			resp: &model.SetBreakpointsResponse{Breakpoints: []model.KernelBreakpoint{
				{ID: 1, Verified: true, Line: 5},
				{ID: 2, Verified: true, Line: 5},
			}},
			want: entity.Breakpoints{
				{ID: 1, Line: 5, Verified: true, Source: entity.Source{Name: "k"}},
			},
		},
		{
			name: "short response",
			resp: &model.SetBreakpointsResponse{Breakpoints: []model.KernelBreakpoint{{ID: 1, Verified: false}}},
			want: entity.Breakpoints{
				{ID: 1, Line: 2, Verified: false, Source: entity.Source{Name: "k"}},
				{Line: 5, Verified: true, Source: entity.Source{Name: "k"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SetBreakpointsResponseToBreakpoints(requested, tt.resp))
		})
	}
	assert.Equal(t, 2, requested[0].Line, "request is not mutated")
	assert.True(t, requested[1].Verified)
}

func TestDebugInfoToHashParams(t *testing.T) {
	assert.Nil(t, DebugInfoToHashParams(nil))
	assert.Nil(t, DebugInfoToHashParams(&model.DebugInfoResponse{}))

	got := DebugInfoToHashParams(&model.DebugInfoResponse{HashSeed: 42, TmpFilePrefix: "/tmp/k/", TmpFileSuffix: ".py"})
	require.NotNil(t, got)
	assert.Equal(t, entity.HashParams{Seed: 42, TmpFilePrefix: "/tmp/k/", TmpFileSuffix: ".py"}, *got)
}

func TestDebugInfoToBreakpoints(t *testing.T) {
	resp := &model.DebugInfoResponse{Breakpoints: []model.DebugInfoSource{
		{Source: "/tmp/k/1.py", Breakpoints: []model.SourceBreakpoint{{Line: 1}, {Line: 4}, {Line: 1}}},
		{Source: "/src/main.py", Breakpoints: []model.SourceBreakpoint{{Line: 10}}},
	}}

	got := DebugInfoToBreakpoints(resp, "kernel-1")
	require.Len(t, got, 2)
	assert.Equal(t, []int{1, 4}, got["/tmp/k/1.py"].Lines())
	assert.Equal(t, entity.Breakpoint{Line: 10, Verified: true, Source: entity.Source{Name: "kernel-1", Path: "/src/main.py"}}, got["/src/main.py"][0])

	assert.Empty(t, DebugInfoToBreakpoints(nil, "k"))
}
