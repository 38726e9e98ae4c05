package fs

import (
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMkdirAll(t *testing.T) {
	dir := t.TempDir()
	fs := New()
	err := fs.MkdirAll(path.Join(dir, "foo/bar"))
	assert.NoError(t, err)
	assert.DirExists(t, path.Join(dir, "foo/bar"))
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	name := path.Join(dir, "info.json")
	fs := New()

	require.NoError(t, fs.WriteFile(name, `{"a":"b"}`))
	content, err := fs.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, `{"a":"b"}`, string(content))

	_, err = fs.ReadFile(path.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(err))

	assert.Error(t, fs.WriteFile(path.Join(dir, "missing", "info.json"), "x"))
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	name := path.Join(dir, "info.json")
	fs := New()
	require.NoError(t, fs.WriteFile(name, "x"))

	assert.NoError(t, fs.Remove(name))
	assert.NoFileExists(t, name)
	assert.NoError(t, fs.Remove(name), "removing a missing file")

	require.NoError(t, fs.MkdirAll(path.Join(dir, "full", "child")))
	assert.Error(t, fs.Remove(path.Join(dir, "full")))
}
