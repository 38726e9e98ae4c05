package widget

import (
	"slices"
	"sync"

	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/signal"
)

// CellList is an observable list of cell models.
type CellList struct {
	mu      sync.Mutex
	models  []entity.CellModel
	changed *signal.Signal[entity.CellListChange]
}

var _ entity.CellList = (*CellList)(nil)

// NewCellList creates an empty list.
func NewCellList() *CellList {
	return &CellList{changed: signal.New[entity.CellListChange]()}
}

// Len returns the number of models.
func (l *CellList) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.models)
}

// At returns the model at i, or nil.
func (l *CellList) At(i int) entity.CellModel {
	l.mu.Lock()
	defer l.mu.Unlock()
	if i < 0 || i >= len(l.models) {
		return nil
	}
	return l.models[i]
}

// OnChanged registers fn for every change of the list.
func (l *CellList) OnChanged(fn func(entity.CellListChange)) (disconnect func()) {
	return l.changed.Connect(fn)
}

func (l *CellList) insert(i int, model entity.CellModel) entity.CellListChange {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.models = slices.Insert(l.models, i, model)
	return entity.CellListChange{
		Type:      entity.CellListAdd,
		OldIndex:  -1,
		NewIndex:  i,
		NewValues: []entity.CellModel{model},
	}
}

func (l *CellList) remove(i int) entity.CellListChange {
	l.mu.Lock()
	defer l.mu.Unlock()

	model := l.models[i]
	l.models = slices.Delete(l.models, i, i+1)
	return entity.CellListChange{
		Type:      entity.CellListRemove,
		OldIndex:  i,
		NewIndex:  -1,
		OldValues: []entity.CellModel{model},
	}
}

func (l *CellList) move(from, to int) entity.CellListChange {
	l.mu.Lock()
	defer l.mu.Unlock()

	model := l.models[from]
	l.models = slices.Delete(l.models, from, from+1)
	l.models = slices.Insert(l.models, to, model)
	return entity.CellListChange{
		Type:      entity.CellListMove,
		OldIndex:  from,
		NewIndex:  to,
		OldValues: []entity.CellModel{model},
		NewValues: []entity.CellModel{model},
	}
}

func (l *CellList) set(i int, model entity.CellModel) entity.CellListChange {
	l.mu.Lock()
	defer l.mu.Unlock()

	old := l.models[i]
	l.models[i] = model
	return entity.CellListChange{
		Type:      entity.CellListSet,
		OldIndex:  i,
		NewIndex:  i,
		OldValues: []entity.CellModel{old},
		NewValues: []entity.CellModel{model},
	}
}

func (l *CellList) emit(change entity.CellListChange) {
	l.changed.Emit(change)
}
