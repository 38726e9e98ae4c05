package model

import (
	"github.com/gofrs/uuid"
)

// Session is the repository layer model for a debug session.
type Session struct {
	ID            uuid.UUID
	Name          string
	HasKernelHash bool
	HashSeed      uint32
	TmpFilePrefix string
	TmpFileSuffix string
}

// Breakpoint is the repository layer model for a single breakpoint, also sent to frontends.
type Breakpoint struct {
	ID         int    `json:"id,omitempty"`
	Line       int    `json:"line"`
	Verified   bool   `json:"verified"`
	SourceName string `json:"sourceName,omitempty"`
	SourcePath string `json:"sourcePath,omitempty"`
	Message    string `json:"message,omitempty"`
}
