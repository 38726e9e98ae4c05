package fs

import (
	"os"

	"go.uber.org/fx"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// DbgSyncFS wraps the filesystem operations used by dbg-sync.
type DbgSyncFS interface {
	// MkdirAll creates a directory and all its parents.
	MkdirAll(path string) error
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data string) error
	// Remove removes a file. A missing file is not an error.
	Remove(name string) error
}

type fsImpl struct{}

// New creates a new DbgSyncFS.
func New() DbgSyncFS {
	return fsImpl{}
}

func (fsImpl) MkdirAll(path string) error { return os.MkdirAll(path, os.ModePerm) }

func (fsImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (fsImpl) WriteFile(name string, data string) error {
	return os.WriteFile(name, []byte(data), 0644)
}

func (fsImpl) Remove(name string) error {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
