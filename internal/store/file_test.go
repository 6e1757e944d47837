package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileBackend_LoadMissing(t *testing.T) {
	b := NewFileBackend(t.TempDir())

	data, err := b.Load("nothing")
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestFileBackend_SaveAndLoad(t *testing.T) {
	root := t.TempDir()
	b := NewFileBackend(root)

	require.NoError(t, b.Save("farm", []byte(`{"a":1}`)))

	data, err := b.Load("farm")
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(data))
	require.Equal(t, filepath.Join(root, "farm", "data.json"), b.Path("farm"))
}

func TestFileBackend_Permissions(t *testing.T) {
	b := NewFileBackend(t.TempDir())
	require.NoError(t, b.Save("farm", []byte(`{}`)))

	info, err := os.Stat(b.Path("farm"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dir, err := os.Stat(filepath.Dir(b.Path("farm")))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), dir.Mode().Perm())
}

func TestFileBackend_NoTempFilesLeft(t *testing.T) {
	b := NewFileBackend(t.TempDir())
	require.NoError(t, b.Save("farm", []byte(`{"v":1}`)))
	require.NoError(t, b.Save("farm", []byte(`{"v":2}`)))

	entries, err := os.ReadDir(filepath.Dir(b.Path("farm")))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "data.json", entries[0].Name())
}

func TestFileBackend_SaveFailsWhenRootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0600))

	require.Error(t, NewFileBackend(root).Save("farm", []byte(`{}`)))
}
