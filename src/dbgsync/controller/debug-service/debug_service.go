package debugservice

import (
	"context"
	"sync"

	"github.com/gofrs/uuid"
	"github.com/uber-go/tally"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/gateway/kernel"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"github.com/uber/dbg-sync/src/dbgsync/internal/signal"
	"github.com/uber/dbg-sync/src/dbgsync/internal/sourceid"
	"github.com/uber/dbg-sync/src/dbgsync/mapper"
	"github.com/uber/dbg-sync/src/dbgsync/repository/breakpoints"
	"github.com/uber/dbg-sync/src/dbgsync/repository/session"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const _nameKey = "debug-service"

// Service owns the breakpoint model, the current frame and the active debug session.
// Every signal is emitted synchronously on the calling goroutine.
type Service interface {
	// Session returns the active session, or nil.
	Session() *entity.Session
	// SetSession makes s the active session and restores the breakpoints the kernel holds for it.
	SetSession(ctx context.Context, s *entity.Session) error
	// SwitchSession activates a session previously set, by connection id.
	SwitchSession(ctx context.Context, id uuid.UUID) error
	// EndSession drops the active session and its breakpoint model.
	EndSession(ctx context.Context) error
	// IsStarted reports whether the active session is attached and its state restored.
	IsStarted() bool

	// UpdateBreakpoints replaces the breakpoints of a source. The source is path when set,
	// otherwise the content identity of code.
	UpdateBreakpoints(ctx context.Context, code string, bps entity.Breakpoints, path string) error
	// GetBreakpoints returns a copy of the breakpoints stored for sourceID.
	GetBreakpoints(sourceID string) entity.Breakpoints
	// GetCodeID returns the content identity of code under the active session's hash parameters.
	GetCodeID(code string) string

	SetCurrentFrame(frame *entity.Frame)
	// CurrentFrame returns the current frame, or nil.
	CurrentFrame() *entity.Frame

	OnBreakpointsChanged(fn func(sourceID string)) (disconnect func())
	OnBreakpointsRestored(fn func()) (disconnect func())
	OnCurrentFrameChanged(fn func(frame *entity.Frame)) (disconnect func())
}

// Params are inbound parameters to initialize a new Service.
type Params struct {
	fx.In

	Sessions    session.Repository
	Breakpoints breakpoints.Repository
	Kernel      kernel.Gateway
	Hasher      sourceid.Hasher
	Logger      *zap.SugaredLogger
	Stats       tally.Scope
}

type service struct {
	sessions    session.Repository
	breakpoints breakpoints.Repository
	kernel      kernel.Gateway
	hasher      sourceid.Hasher
	defaults    entity.HashParams
	logger      *zap.SugaredLogger
	stats       tally.Scope

	mu        sync.Mutex
	sessionID uuid.UUID
	started   bool
	frame     *entity.Frame
	// dumped maps the kernel path of a dumped cell to its code, so restored
	// breakpoints can be keyed by the local content identity.
	dumped map[string]string

	breakpointsChanged  *signal.Signal[string]
	breakpointsRestored *signal.Signal[struct{}]
	frameChanged        *signal.Signal[*entity.Frame]
}

// New creates a new debug Service.
func New(p Params) Service {
	return &service{
		sessions:            p.Sessions,
		breakpoints:         p.Breakpoints,
		kernel:              p.Kernel,
		hasher:              p.Hasher,
		defaults:            p.Hasher.Params(),
		logger:              p.Logger.With("controller", _nameKey),
		stats:               p.Stats.SubScope("debug_service"),
		dumped:              make(map[string]string),
		breakpointsChanged:  signal.New[string](),
		breakpointsRestored: signal.New[struct{}](),
		frameChanged:        signal.New[*entity.Frame](),
	}
}

func (s *service) Session() *entity.Session {
	s.mu.Lock()
	id := s.sessionID
	s.mu.Unlock()

	if id == uuid.Nil {
		return nil
	}
	sess, err := s.sessions.Get(context.Background(), id)
	if err != nil {
		return nil
	}
	return sess
}

func (s *service) SetSession(ctx context.Context, sess *entity.Session) error {
	if sess == nil {
		return s.EndSession(ctx)
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return err
	}

	s.mu.Lock()
	s.sessionID = sess.ID
	s.started = false
	hadFrame := s.frame != nil
	s.frame = nil
	s.mu.Unlock()

	if hadFrame {
		s.frameChanged.Emit(nil)
	}
	return s.restore(ctx, sess)
}

func (s *service) SwitchSession(ctx context.Context, id uuid.UUID) error {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.SetSession(ctx, sess)
}

func (s *service) EndSession(ctx context.Context) error {
	s.mu.Lock()
	id := s.sessionID
	s.sessionID = uuid.Nil
	s.started = false
	hadFrame := s.frame != nil
	s.frame = nil
	s.mu.Unlock()

	if id == uuid.Nil {
		return nil
	}

	s.hasher.Configure(s.defaults)
	err := multierr.Combine(
		s.sessions.Delete(ctx, id),
		s.breakpoints.Restore(ctx, nil),
	)

	if hadFrame {
		s.frameChanged.Emit(nil)
	}
	s.breakpointsRestored.Emit(struct{}{})
	s.logger.Infow("debug session ended", zap.Stringer("id", id))
	return err
}

func (s *service) IsStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *service) UpdateBreakpoints(ctx context.Context, code string, bps entity.Breakpoints, path string) error {
	sess := s.Session()
	if sess == nil {
		return &errors.NoSessionError{}
	}

	sourceID := sourceid.Resolve(s.hasher, path, code)
	for _, bp := range bps {
		if bp.Line < 1 {
			return &errors.InvalidLineError{SourceID: sourceID, Line: bp.Line}
		}
	}
	bps = bps.Dedup()

	sourcePath := path
	if sourcePath == "" {
		dumped, err := s.kernel.DumpCell(ctx, code)
		if err != nil {
			s.stats.Counter("update_errors").Inc(1)
			return err
		}
		sourcePath = dumped
		if sourcePath == "" {
			sourcePath = sourceID
		}
	}

	resp, err := s.kernel.SetBreakpoints(ctx, mapper.BreakpointsToSetBreakpointsRequest(sourcePath, bps))
	if err != nil {
		s.stats.Counter("update_errors").Inc(1)
		return err
	}

	merged := mapper.SetBreakpointsResponseToBreakpoints(bps, resp)
	for i := range merged {
		if merged[i].Source.Path == "" {
			merged[i].Source.Path = sourcePath
		}
	}

	// The session may have been replaced while the kernel answered.
	if current := s.Session(); current == nil || current.ID != sess.ID {
		s.logger.Debugw("dropping breakpoints of a replaced session", zap.Stringer("id", sess.ID))
		return nil
	}
	if err := s.breakpoints.Set(ctx, sourceID, merged); err != nil {
		return err
	}
	if sourcePath != sourceID {
		s.mu.Lock()
		s.dumped[sourcePath] = code
		s.mu.Unlock()
	}

	s.stats.Counter("updates").Inc(1)
	s.breakpointsChanged.Emit(sourceID)
	return nil
}

func (s *service) GetBreakpoints(sourceID string) entity.Breakpoints {
	bps, err := s.breakpoints.Get(context.Background(), sourceID)
	if err != nil {
		s.logger.Warnw("reading breakpoints", zap.String("source", sourceID), zap.Error(err))
		return entity.Breakpoints{}
	}
	return bps
}

func (s *service) GetCodeID(code string) string {
	return s.hasher.CodeID(code)
}

func (s *service) SetCurrentFrame(frame *entity.Frame) {
	s.mu.Lock()
	if frame != nil {
		f := *frame
		frame = &f
	}
	s.frame = frame
	s.mu.Unlock()

	s.frameChanged.Emit(frame)
}

func (s *service) CurrentFrame() *entity.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frame == nil {
		return nil
	}
	f := *s.frame
	return &f
}

func (s *service) OnBreakpointsChanged(fn func(sourceID string)) (disconnect func()) {
	return s.breakpointsChanged.Connect(fn)
}

func (s *service) OnBreakpointsRestored(fn func()) (disconnect func()) {
	return s.breakpointsRestored.Connect(func(struct{}) { fn() })
}

func (s *service) OnCurrentFrameChanged(fn func(frame *entity.Frame)) (disconnect func()) {
	return s.frameChanged.Connect(fn)
}

// restore replaces the breakpoint model with what the kernel holds for the session.
func (s *service) restore(ctx context.Context, sess *entity.Session) error {
	if err := s.breakpoints.Restore(ctx, nil); err != nil {
		return err
	}

	info, err := s.kernel.DebugInfo(ctx)
	if err != nil {
		s.stats.Counter("restore_errors").Inc(1)
		s.breakpointsRestored.Emit(struct{}{})
		return err
	}

	if hash := mapper.DebugInfoToHashParams(info); hash != nil {
		s.hasher.Configure(*hash)
		sess.KernelHash = hash
		if err := s.sessions.Set(ctx, sess); err != nil {
			return err
		}
	}

	restored, invalid := validLines(s.rekeyDumped(mapper.DebugInfoToBreakpoints(info, sess.Name)))
	if invalid != nil {
		s.logger.Warnw("skipping invalid breakpoints reported by the kernel",
			zap.Int("count", len(multierr.Errors(invalid))), zap.Error(invalid))
	}
	if err := s.breakpoints.Restore(ctx, restored); err != nil {
		return err
	}

	s.mu.Lock()
	if s.sessionID == sess.ID {
		s.started = true
	}
	s.mu.Unlock()

	s.stats.Counter("restores").Inc(1)
	s.logger.Infow("debug session restored",
		zap.Stringer("id", sess.ID),
		zap.String("name", sess.Name),
		zap.Int("sources", len(restored)))
	s.breakpointsRestored.Emit(struct{}{})
	return nil
}

// rekeyDumped moves breakpoints reported under the kernel path of a dumped cell to the cell's content identity.
func (s *service) rekeyDumped(all map[string]entity.Breakpoints) map[string]entity.Breakpoints {
	s.mu.Lock()
	codes := make(map[string]string, len(s.dumped))
	for path, code := range s.dumped {
		codes[path] = code
	}
	s.mu.Unlock()

	result := make(map[string]entity.Breakpoints, len(all))
	for path, bps := range all {
		id := path
		if code, ok := codes[path]; ok {
			id = s.hasher.CodeID(code)
		}
		result[id] = append(result[id], bps...).Dedup()
	}
	return result
}

func validLines(all map[string]entity.Breakpoints) (map[string]entity.Breakpoints, error) {
	var errs error
	result := make(map[string]entity.Breakpoints, len(all))
	for id, bps := range all {
		valid := make(entity.Breakpoints, 0, len(bps))
		for _, bp := range bps {
			if bp.Line < 1 {
				errs = multierr.Append(errs, &errors.InvalidLineError{SourceID: id, Line: bp.Line})
				continue
			}
			valid = append(valid, bp)
		}
		result[id] = valid
	}
	return result, errs
}
