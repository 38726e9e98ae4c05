// Package debugservicetest backs a mock debug service with an in-memory model.
package debugservicetest

import (
	"context"
	"sync"

	"github.com/uber/dbg-sync/src/dbgsync/controller/debug-service/debugservicemock"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/signal"
	"github.com/uber/dbg-sync/src/dbgsync/internal/sourceid"
	"go.uber.org/mock/gomock"
)

// Update is a recorded UpdateBreakpoints call.
type Update struct {
	Code     string
	Bps      entity.Breakpoints
	Path     string
	SourceID string
}

// Model backs a MockService with an in-memory breakpoint store and live signals.
type Model struct {
	Hasher   sourceid.Hasher
	Changed  *signal.Signal[string]
	Restored *signal.Signal[struct{}]
	Frame    *signal.Signal[*entity.Frame]

	mu      sync.Mutex
	session *entity.Session
	frame   *entity.Frame
	store   map[string]entity.Breakpoints
	updates []Update
}

// NewModel creates a model whose active session is session.
func NewModel(session *entity.Session) *Model {
	return &Model{
		Hasher:   sourceid.NewWithParams(sourceid.DefaultParams()),
		Changed:  signal.New[string](),
		Restored: signal.New[struct{}](),
		Frame:    signal.New[*entity.Frame](),
		session:  session,
		store:    make(map[string]entity.Breakpoints),
	}
}

// Mock returns a MockService answering every call from the model.
func (m *Model) Mock(ctrl *gomock.Controller) *debugservicemock.MockService {
	svc := debugservicemock.NewMockService(ctrl)
	svc.EXPECT().Session().DoAndReturn(m.Session).AnyTimes()
	svc.EXPECT().IsStarted().DoAndReturn(func() bool { return m.Session() != nil }).AnyTimes()
	svc.EXPECT().GetCodeID(gomock.Any()).DoAndReturn(m.Hasher.CodeID).AnyTimes()
	svc.EXPECT().GetBreakpoints(gomock.Any()).DoAndReturn(m.Get).AnyTimes()
	svc.EXPECT().UpdateBreakpoints(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(m.updateBreakpoints).AnyTimes()
	svc.EXPECT().OnBreakpointsChanged(gomock.Any()).DoAndReturn(m.Changed.Connect).AnyTimes()
	svc.EXPECT().OnBreakpointsRestored(gomock.Any()).DoAndReturn(func(fn func()) func() {
		return m.Restored.Connect(func(struct{}) { fn() })
	}).AnyTimes()
	svc.EXPECT().OnCurrentFrameChanged(gomock.Any()).DoAndReturn(m.Frame.Connect).AnyTimes()
	svc.EXPECT().SetSession(gomock.Any(), gomock.Any()).DoAndReturn(m.setSession).AnyTimes()
	svc.EXPECT().EndSession(gomock.Any()).DoAndReturn(m.endSession).AnyTimes()
	svc.EXPECT().SetCurrentFrame(gomock.Any()).Do(m.setCurrentFrame).AnyTimes()
	svc.EXPECT().CurrentFrame().DoAndReturn(m.CurrentFrame).AnyTimes()
	return svc
}

// Session returns the active session.
func (m *Model) Session() *entity.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// SetSession replaces the active session without emitting anything.
func (m *Model) SetSession(s *entity.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
}

// CurrentFrame returns the last frame set through the mock.
func (m *Model) CurrentFrame() *entity.Frame {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frame
}

// Get returns a copy of the breakpoints of sourceID.
func (m *Model) Get(sourceID string) entity.Breakpoints {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store[sourceID].Clone()
}

// Set replaces the breakpoints of sourceID without emitting anything.
func (m *Model) Set(sourceID string, bps entity.Breakpoints) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store[sourceID] = bps
}

// Updates returns the UpdateBreakpoints calls received so far.
func (m *Model) Updates() []Update {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Update(nil), m.updates...)
}

func (m *Model) updateBreakpoints(_ context.Context, code string, bps entity.Breakpoints, path string) error {
	sourceID := sourceid.Resolve(m.Hasher, path, code)

	m.mu.Lock()
	m.store[sourceID] = bps.Dedup()
	m.updates = append(m.updates, Update{Code: code, Bps: bps.Clone(), Path: path, SourceID: sourceID})
	m.mu.Unlock()

	m.Changed.Emit(sourceID)
	return nil
}

func (m *Model) setSession(_ context.Context, s *entity.Session) error {
	if s == nil {
		return m.endSession(context.Background())
	}
	m.mu.Lock()
	m.session = s
	hadFrame := m.frame != nil
	m.frame = nil
	m.mu.Unlock()

	if hadFrame {
		m.Frame.Emit(nil)
	}
	m.Restored.Emit(struct{}{})
	return nil
}

func (m *Model) endSession(context.Context) error {
	m.mu.Lock()
	had := m.session != nil
	m.session = nil
	hadFrame := m.frame != nil
	m.frame = nil
	m.store = make(map[string]entity.Breakpoints)
	m.mu.Unlock()

	if !had {
		return nil
	}
	if hadFrame {
		m.Frame.Emit(nil)
	}
	m.Restored.Emit(struct{}{})
	return nil
}

func (m *Model) setCurrentFrame(frame *entity.Frame) {
	m.mu.Lock()
	m.frame = frame
	m.mu.Unlock()

	m.Frame.Emit(frame)
}
