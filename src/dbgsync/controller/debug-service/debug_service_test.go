package debugservice

import (
	"context"
	"fmt"
	"testing"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/gateway/kernel/kernelmock"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"github.com/uber/dbg-sync/src/dbgsync/internal/sourceid"
	"github.com/uber/dbg-sync/src/dbgsync/model"
	"github.com/uber/dbg-sync/src/dbgsync/repository/breakpoints"
	"github.com/uber/dbg-sync/src/dbgsync/repository/session"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	svc    Service
	kernel *kernelmock.MockGateway
	hasher sourceid.Hasher
	scope  tally.TestScope
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	scope := tally.NewTestScope("testing", make(map[string]string, 0))
	k := kernelmock.NewMockGateway(ctrl)
	h := sourceid.NewWithParams(sourceid.DefaultParams())

	return fixture{
		svc: New(Params{
			Sessions:    session.New(scope),
			Breakpoints: breakpoints.New(scope),
			Kernel:      k,
			Hasher:      h,
			Logger:      zap.NewNop().Sugar(),
			Stats:       scope,
		}),
		kernel: k,
		hasher: h,
		scope:  scope,
	}
}

func newSession(name string) *entity.Session {
	return &entity.Session{ID: uuid.Must(uuid.NewV4()), Name: name}
}

func emptyDebugInfo() *model.DebugInfoResponse {
	return &model.DebugInfoResponse{IsStarted: true}
}

func echoSetBreakpoints(_ context.Context, req *model.SetBreakpointsRequest) (*model.SetBreakpointsResponse, error) {
	resp := &model.SetBreakpointsResponse{}
	for i, bp := range req.Breakpoints {
		resp.Breakpoints = append(resp.Breakpoints, model.KernelBreakpoint{ID: i + 1, Line: bp.Line, Verified: true})
	}
	return resp, nil
}

func TestSetSession(t *testing.T) {
	ctx := context.Background()

	t.Run("restores kernel state", func(t *testing.T) {
		f := newFixture(t)
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(&model.DebugInfoResponse{
			IsStarted:     true,
			HashSeed:      7,
			TmpFilePrefix: "/tmp/k/",
			TmpFileSuffix: ".py",
			Breakpoints: []model.DebugInfoSource{
				{Source: "/tmp/k/1.py", Breakpoints: []model.SourceBreakpoint{{Line: 3}, {Line: 0}}},
			},
		}, nil)

		restored := 0
		f.svc.OnBreakpointsRestored(func() { restored++ })

		s := newSession("kernel-1")
		require.NoError(t, f.svc.SetSession(ctx, s))

		assert.Equal(t, 1, restored)
		assert.True(t, f.svc.IsStarted())
		require.NotNil(t, f.svc.Session())
		assert.Equal(t, s.ID, f.svc.Session().ID)
		assert.Equal(t, &entity.HashParams{Seed: 7, TmpFilePrefix: "/tmp/k/", TmpFileSuffix: ".py"}, f.svc.Session().KernelHash)
		assert.Equal(t, uint32(7), f.hasher.Params().Seed)
		assert.Equal(t, []int{3}, f.svc.GetBreakpoints("/tmp/k/1.py").Lines(), "invalid lines are skipped")
		assert.Equal(t, "kernel-1", f.svc.GetBreakpoints("/tmp/k/1.py")[0].Source.Name)
	})

	t.Run("kernel failure still emits restored", func(t *testing.T) {
		f := newFixture(t)
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(nil, &errors.KernelError{Method: "debug/debugInfo", Err: errors.NotConnectedError})

		restored := 0
		f.svc.OnBreakpointsRestored(func() { restored++ })

		err := f.svc.SetSession(ctx, newSession("kernel-1"))
		assert.ErrorIs(t, err, errors.NotConnectedError)
		assert.Equal(t, 1, restored)
		assert.False(t, f.svc.IsStarted())
		assert.NotNil(t, f.svc.Session())
	})

	t.Run("clears previous breakpoints and frame", func(t *testing.T) {
		f := newFixture(t)
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil).Times(2)
		f.kernel.EXPECT().SetBreakpoints(gomock.Any(), gomock.Any()).DoAndReturn(echoSetBreakpoints)

		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))
		require.NoError(t, f.svc.UpdateBreakpoints(ctx, "x = 1", entity.Breakpoints{{Line: 1}}, "/src/a.py"))
		f.svc.SetCurrentFrame(&entity.Frame{Line: 1, Source: entity.Source{Path: "/src/a.py"}})

		var frames []*entity.Frame
		f.svc.OnCurrentFrameChanged(func(frame *entity.Frame) { frames = append(frames, frame) })

		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-2")))
		assert.Empty(t, f.svc.GetBreakpoints("/src/a.py"))
		assert.Nil(t, f.svc.CurrentFrame())
		require.Len(t, frames, 1)
		assert.Nil(t, frames[0])
	})

	t.Run("restores dumped cells under their content identity", func(t *testing.T) {
		f := newFixture(t)
		code := "a = 1\nb = 2"
		kernelPath := "/tmp/ipykernel/1234567.py"
		defaults := sourceid.DefaultParams()

		gomock.InOrder(
			f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil),
			f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(&model.DebugInfoResponse{
				IsStarted:     true,
				HashSeed:      defaults.Seed,
				TmpFilePrefix: defaults.TmpFilePrefix,
				TmpFileSuffix: defaults.TmpFileSuffix,
				Breakpoints: []model.DebugInfoSource{
					{Source: kernelPath, Breakpoints: []model.SourceBreakpoint{{Line: 2}}},
					{Source: "/src/other.py", Breakpoints: []model.SourceBreakpoint{{Line: 1}}},
				},
			}, nil),
		)
		f.kernel.EXPECT().DumpCell(gomock.Any(), code).Return(kernelPath, nil)
		f.kernel.EXPECT().SetBreakpoints(gomock.Any(), gomock.Any()).DoAndReturn(echoSetBreakpoints)

		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))
		require.NoError(t, f.svc.UpdateBreakpoints(ctx, code, entity.Breakpoints{{Line: 2}}, ""))
		require.NotEqual(t, kernelPath, f.svc.GetCodeID(code))

		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))

		restored := f.svc.GetBreakpoints(f.svc.GetCodeID(code))
		require.Len(t, restored, 1)
		assert.Equal(t, 2, restored[0].Line)
		assert.Equal(t, kernelPath, restored[0].Source.Path)
		assert.Empty(t, f.svc.GetBreakpoints(kernelPath))
		assert.Equal(t, []int{1}, f.svc.GetBreakpoints("/src/other.py").Lines())
	})

	t.Run("nil session ends the active one", func(t *testing.T) {
		f := newFixture(t)
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil)

		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))
		require.NoError(t, f.svc.SetSession(ctx, nil))
		assert.Nil(t, f.svc.Session())
		assert.False(t, f.svc.IsStarted())
	})
}

func TestSwitchSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil).Times(3)

	first := newSession("kernel-1")
	require.NoError(t, f.svc.SetSession(ctx, first))
	require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-2")))

	require.NoError(t, f.svc.SwitchSession(ctx, first.ID))
	assert.Equal(t, first.ID, f.svc.Session().ID)

	missing := uuid.Must(uuid.NewV4())
	err := f.svc.SwitchSession(ctx, missing)
	id, ok := errors.NotFoundSession(err)
	assert.True(t, ok)
	assert.Equal(t, missing, id)
}

func TestEndSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(&model.DebugInfoResponse{
		IsStarted:     true,
		HashSeed:      9,
		TmpFilePrefix: "/tmp/k/",
		Breakpoints: []model.DebugInfoSource{
			{Source: "/src/a.py", Breakpoints: []model.SourceBreakpoint{{Line: 2}}},
		},
	}, nil)

	assert.NoError(t, f.svc.EndSession(ctx), "ending without a session is a no-op")

	s := newSession("kernel-1")
	require.NoError(t, f.svc.SetSession(ctx, s))

	restored := 0
	f.svc.OnBreakpointsRestored(func() { restored++ })
	require.NoError(t, f.svc.EndSession(ctx))

	assert.Equal(t, 1, restored)
	assert.Nil(t, f.svc.Session())
	assert.Empty(t, f.svc.GetBreakpoints("/src/a.py"))
	assert.Equal(t, sourceid.DefaultParams(), f.hasher.Params())

	_, ok := errors.NotFoundSession(f.svc.SwitchSession(ctx, s.ID))
	assert.True(t, ok, "ended sessions are forgotten")
}

func TestUpdateBreakpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("no session", func(t *testing.T) {
		f := newFixture(t)
		err := f.svc.UpdateBreakpoints(ctx, "x", entity.Breakpoints{{Line: 1}}, "")
		var nse *errors.NoSessionError
		assert.ErrorAs(t, err, &nse)
	})

	t.Run("with path", func(t *testing.T) {
		f := newFixture(t)
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil)
		f.kernel.EXPECT().SetBreakpoints(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req *model.SetBreakpointsRequest) (*model.SetBreakpointsResponse, error) {
				assert.Equal(t, "/src/a.py", req.Source.Path)
				assert.Equal(t, []model.SourceBreakpoint{{Line: 2}, {Line: 4}}, req.Breakpoints)
				return &model.SetBreakpointsResponse{Breakpoints: []model.KernelBreakpoint{
					{ID: 1, Line: 2, Verified: true},
					{ID: 2, Line: 4, Verified: false, Message: "no code"},
				}}, nil
			})
		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))

		var changed []string
		f.svc.OnBreakpointsChanged(func(id string) { changed = append(changed, id) })

		bps := entity.Breakpoints{
			{Line: 2, Verified: true, Source: entity.Source{Name: "/src/a.py"}},
			{Line: 4, Verified: true, Source: entity.Source{Name: "/src/a.py"}},
			{Line: 2, Verified: true, Source: entity.Source{Name: "/src/a.py"}},
		}
		require.NoError(t, f.svc.UpdateBreakpoints(ctx, "code", bps, "/src/a.py"))

		assert.Equal(t, []string{"/src/a.py"}, changed)
		got := f.svc.GetBreakpoints("/src/a.py")
		require.Len(t, got, 2)
		assert.True(t, got[0].Verified)
		assert.False(t, got[1].Verified)
		assert.Equal(t, "no code", got[1].Message)
		assert.Equal(t, "/src/a.py", got[1].Source.Path)

		counters := f.scope.Snapshot().Counters()
		assert.Equal(t, int64(1), counters["testing.debug_service.updates+"].Value())
	})

	t.Run("without path dumps the cell", func(t *testing.T) {
		f := newFixture(t)
		code := "x = 1\ny = 2"
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil)
		f.kernel.EXPECT().DumpCell(gomock.Any(), code).Return("/tmp/ipykernel/dumped.py", nil)
		f.kernel.EXPECT().SetBreakpoints(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, req *model.SetBreakpointsRequest) (*model.SetBreakpointsResponse, error) {
				assert.Equal(t, "/tmp/ipykernel/dumped.py", req.Source.Path)
				return echoSetBreakpoints(ctx, req)
			})
		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))

		var changed []string
		f.svc.OnBreakpointsChanged(func(id string) { changed = append(changed, id) })

		require.NoError(t, f.svc.UpdateBreakpoints(ctx, code, entity.Breakpoints{{Line: 2}}, ""))

		codeID := f.svc.GetCodeID(code)
		assert.Equal(t, []string{codeID}, changed, "stored under the content identity")
		assert.Equal(t, []int{2}, f.svc.GetBreakpoints(codeID).Lines())
	})

	t.Run("invalid line", func(t *testing.T) {
		f := newFixture(t)
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil)
		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))

		err := f.svc.UpdateBreakpoints(ctx, "x", entity.Breakpoints{{Line: 0}}, "/a.py")
		var ile *errors.InvalidLineError
		require.ErrorAs(t, err, &ile)
		assert.Equal(t, 0, ile.Line)
	})

	t.Run("kernel failure leaves the model untouched", func(t *testing.T) {
		f := newFixture(t)
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil)
		f.kernel.EXPECT().SetBreakpoints(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("kernel busy"))
		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))

		changed := 0
		f.svc.OnBreakpointsChanged(func(string) { changed++ })

		assert.Error(t, f.svc.UpdateBreakpoints(ctx, "x", entity.Breakpoints{{Line: 1}}, "/a.py"))
		assert.Equal(t, 0, changed)
		assert.Empty(t, f.svc.GetBreakpoints("/a.py"))

		counters := f.scope.Snapshot().Counters()
		assert.Equal(t, int64(1), counters["testing.debug_service.update_errors+"].Value())
	})

	t.Run("dump failure", func(t *testing.T) {
		f := newFixture(t)
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil)
		f.kernel.EXPECT().DumpCell(gomock.Any(), "x").Return("", fmt.Errorf("kernel busy"))
		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))

		assert.Error(t, f.svc.UpdateBreakpoints(ctx, "x", entity.Breakpoints{{Line: 1}}, ""))
	})

	t.Run("session replaced during the kernel call", func(t *testing.T) {
		f := newFixture(t)
		f.kernel.EXPECT().DebugInfo(gomock.Any()).Return(emptyDebugInfo(), nil).Times(2)
		f.kernel.EXPECT().SetBreakpoints(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, req *model.SetBreakpointsRequest) (*model.SetBreakpointsResponse, error) {
				require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-2")))
				return echoSetBreakpoints(ctx, req)
			})
		require.NoError(t, f.svc.SetSession(ctx, newSession("kernel-1")))

		changed := 0
		f.svc.OnBreakpointsChanged(func(string) { changed++ })

		require.NoError(t, f.svc.UpdateBreakpoints(ctx, "x", entity.Breakpoints{{Line: 1}}, "/a.py"))
		assert.Equal(t, 0, changed)
		assert.Empty(t, f.svc.GetBreakpoints("/a.py"))
	})
}

func TestCurrentFrame(t *testing.T) {
	f := newFixture(t)
	assert.Nil(t, f.svc.CurrentFrame())

	var frames []*entity.Frame
	disconnect := f.svc.OnCurrentFrameChanged(func(frame *entity.Frame) { frames = append(frames, frame) })

	frame := &entity.Frame{ID: 1, Name: "main", Line: 3, Source: entity.Source{Path: "/a.py"}}
	f.svc.SetCurrentFrame(frame)
	frame.Line = 99

	require.NotNil(t, f.svc.CurrentFrame())
	assert.Equal(t, 3, f.svc.CurrentFrame().Line, "frame is copied")

	f.svc.SetCurrentFrame(nil)
	assert.Nil(t, f.svc.CurrentFrame())

	disconnect()
	f.svc.SetCurrentFrame(frame)
	require.Len(t, frames, 2)
	assert.Equal(t, 3, frames[0].Line)
	assert.Nil(t, frames[1])
}
