// Package entity contains the domain types for the dbg-sync service.
package entity

import (
	"github.com/gofrs/uuid"
)

// HashParams describes how the kernel derives temporary source paths for code without a file.
type HashParams struct {
	Seed          uint32 `json:"hashSeed" yaml:"hashSeed"`
	TmpFilePrefix string `json:"tmpFilePrefix" yaml:"tmpFilePrefix"`
	TmpFileSuffix string `json:"tmpFileSuffix" yaml:"tmpFileSuffix"`
}

// Session entity representing a single debug session connection.
type Session struct {
	// ID is the connection id. Handlers capture it at construction to detect stale callbacks.
	ID uuid.UUID `json:"id" zap:"id"`
	// Name is the connection name, used as the breakpoint source name when no path exists.
	Name string `json:"name" zap:"name"`
	// KernelHash is reported by the kernel once the session is started.
	KernelHash *HashParams `json:"-" zap:"-"`
}

// Frame is the current execution position reported by the callstack model.
type Frame struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Line   int    `json:"line"`
	Source Source `json:"source"`
}

type keyType string

// SessionContextKey is the context key holding the connection id of an inbound request.
const SessionContextKey keyType = "SessionUUID"
