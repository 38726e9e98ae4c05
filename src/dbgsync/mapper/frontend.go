package mapper

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/uber/dbg-sync/src/dbgsync/entity"
	"github.com/uber/dbg-sync/src/dbgsync/internal/errors"
	"github.com/uber/dbg-sync/src/dbgsync/model"
	"go.lsp.dev/jsonrpc2"
)

// RequestToAttachParams maps the parameters from a jsonrpc2.Request into model.AttachParams.
func RequestToAttachParams(req jsonrpc2.Request) (*model.AttachParams, error) {
	params := model.AttachParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToOpenFileParams maps the parameters from a jsonrpc2.Request into model.OpenFileParams.
func RequestToOpenFileParams(req jsonrpc2.Request) (*model.OpenFileParams, error) {
	params := model.OpenFileParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToChangeFileParams maps the parameters from a jsonrpc2.Request into model.ChangeFileParams.
func RequestToChangeFileParams(req jsonrpc2.Request) (*model.ChangeFileParams, error) {
	params := model.ChangeFileParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToCloseParams maps the parameters from a jsonrpc2.Request into model.CloseParams.
func RequestToCloseParams(req jsonrpc2.Request) (*model.CloseParams, error) {
	params := model.CloseParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToOpenNotebookParams maps the parameters from a jsonrpc2.Request into model.OpenNotebookParams.
func RequestToOpenNotebookParams(req jsonrpc2.Request) (*model.OpenNotebookParams, error) {
	params := model.OpenNotebookParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToChangeCellParams maps the parameters from a jsonrpc2.Request into model.ChangeCellParams.
func RequestToChangeCellParams(req jsonrpc2.Request) (*model.ChangeCellParams, error) {
	params := model.ChangeCellParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToInsertCellParams maps the parameters from a jsonrpc2.Request into model.InsertCellParams.
func RequestToInsertCellParams(req jsonrpc2.Request) (*model.InsertCellParams, error) {
	params := model.InsertCellParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToCellParams maps the parameters from a jsonrpc2.Request into model.CellParams.
func RequestToCellParams(req jsonrpc2.Request) (*model.CellParams, error) {
	params := model.CellParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToMoveCellParams maps the parameters from a jsonrpc2.Request into model.MoveCellParams.
func RequestToMoveCellParams(req jsonrpc2.Request) (*model.MoveCellParams, error) {
	params := model.MoveCellParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToOpenConsoleParams maps the parameters from a jsonrpc2.Request into model.OpenConsoleParams.
func RequestToOpenConsoleParams(req jsonrpc2.Request) (*model.OpenConsoleParams, error) {
	params := model.OpenConsoleParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToChangePromptParams maps the parameters from a jsonrpc2.Request into model.ChangePromptParams.
func RequestToChangePromptParams(req jsonrpc2.Request) (*model.ChangePromptParams, error) {
	params := model.ChangePromptParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToExecuteParams maps the parameters from a jsonrpc2.Request into model.ExecuteParams.
func RequestToExecuteParams(req jsonrpc2.Request) (*model.ExecuteParams, error) {
	params := model.ExecuteParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToToggleBreakpointParams maps the parameters from a jsonrpc2.Request into model.ToggleBreakpointParams.
func RequestToToggleBreakpointParams(req jsonrpc2.Request) (*model.ToggleBreakpointParams, error) {
	params := model.ToggleBreakpointParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToFrameParams maps the parameters from a jsonrpc2.Request into model.FrameParams.
func RequestToFrameParams(req jsonrpc2.Request) (*model.FrameParams, error) {
	params := model.FrameParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// RequestToBreakpointsParams maps the parameters from a jsonrpc2.Request into model.BreakpointsParams.
func RequestToBreakpointsParams(req jsonrpc2.Request) (*model.BreakpointsParams, error) {
	params := model.BreakpointsParams{}
	if err := unmarshalParams(req, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

// FrameParamsToFrame maps a frontend frame to its entity equivalent.
func FrameParamsToFrame(p *model.FrameParams) *entity.Frame {
	if p == nil {
		return nil
	}
	return &entity.Frame{
		ID:     p.ID,
		Name:   p.Name,
		Line:   p.Line,
		Source: entity.Source{Path: p.SourcePath},
	}
}

// FrameToCurrentFrameChangedParams maps the current frame to its notification. A nil frame means execution resumed.
func FrameToCurrentFrameChangedParams(f *entity.Frame) *model.CurrentFrameChangedParams {
	if f == nil {
		return &model.CurrentFrameChangedParams{}
	}
	return &model.CurrentFrameChangedParams{
		Frame: &model.FrameParams{
			ID:         f.ID,
			Name:       f.Name,
			Line:       f.Line,
			SourcePath: f.Source.Path,
		},
	}
}

// BreakpointsToBreakpointsChangedParams maps the breakpoints of a source to their notification.
func BreakpointsToBreakpointsChangedParams(sourceID string, bps entity.Breakpoints) *model.BreakpointsChangedParams {
	return &model.BreakpointsChangedParams{
		SourceID:    sourceID,
		Breakpoints: BreakpointsToModel(bps),
	}
}

// NotebookCellToCellType maps the cell type of a frontend notebook cell. Unknown types are raw cells.
func NotebookCellToCellType(c model.NotebookCell) entity.CellType {
	switch t := entity.CellType(c.Type); t {
	case entity.CellTypeCode, entity.CellTypeMarkdown:
		return t
	default:
		return entity.CellTypeRaw
	}
}

func unmarshalParams(req jsonrpc2.Request, v interface{}) error {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		return fmt.Errorf("%s: %w", jsonrpc2.ErrParse, err)
	}
	return nil
}

// ContextToSessionUUID returns the connection id carried by the request context.
func ContextToSessionUUID(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(entity.SessionContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, &errors.NoSessionFoundError{}
	}
	return id, nil
}
