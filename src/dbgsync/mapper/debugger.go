package mapper

import (
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/model"
)

// SessionToModel maps a Session entity to its model equivalent.
func SessionToModel(s *entity.Session) *model.Session {
	m := &model.Session{
		ID:   s.ID,
		Name: s.Name,
	}
	if s.KernelHash != nil {
		m.HasKernelHash = true
		m.HashSeed = s.KernelHash.Seed
		m.TmpFilePrefix = s.KernelHash.TmpFilePrefix
		m.TmpFileSuffix = s.KernelHash.TmpFileSuffix
	}
	return m
}

// ModelToSession maps a model Session to its entity equivalent.
func ModelToSession(m *model.Session) (*entity.Session, error) {
	s := &entity.Session{
		ID:   m.ID,
		Name: m.Name,
	}
	if m.HasKernelHash {
		s.KernelHash = &entity.HashParams{
			Seed:          m.HashSeed,
			TmpFilePrefix: m.TmpFilePrefix,
			TmpFileSuffix: m.TmpFileSuffix,
		}
	}
	return s, nil
}

// BreakpointsToModel maps breakpoint entities to their model equivalent.
func BreakpointsToModel(bps entity.Breakpoints) []model.Breakpoint {
	result := make([]model.Breakpoint, 0, len(bps))
	for _, bp := range bps {
		result = append(result, model.Breakpoint{
			ID:         bp.ID,
			Line:       bp.Line,
			Verified:   bp.Verified,
			SourceName: bp.Source.Name,
			SourcePath: bp.Source.Path,
			Message:    bp.Message,
		})
	}
	return result
}

// ModelToBreakpoints maps breakpoint models to their entity equivalent.
func ModelToBreakpoints(m []model.Breakpoint) entity.Breakpoints {
	result := make(entity.Breakpoints, 0, len(m))
	for _, bp := range m {
		result = append(result, entity.Breakpoint{
			ID:       bp.ID,
			Line:     bp.Line,
			Verified: bp.Verified,
			Source:   entity.Source{Name: bp.SourceName, Path: bp.SourcePath},
			Message:  bp.Message,
		})
	}
	return result
}
