package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppDataDir_CreatesDirectory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}

	dir := AppDataDir()
	require.Equal(t, appDirName, filepath.Base(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestAppLocalDataDir_WithXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME only applies on linux")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)

	require.Equal(t, filepath.Join(xdg, appDirName), AppLocalDataDir())
}

func TestAppLocalDataDir_WithoutXDGDataHome(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_DATA_HOME only applies on linux")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")

	require.Equal(t, filepath.Join(home, ".local", "share", appDirName), AppLocalDataDir())
}

func TestStoreRoot_UnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	require.Equal(t, filepath.Join(home, ".scopes"), StoreRoot())
}

func TestDatabasePath_IsUnderAppLocalDataDir(t *testing.T) {
	path := DatabasePath()
	require.Equal(t, "store.db", filepath.Base(path))
	require.True(t, strings.HasPrefix(path, AppLocalDataDir()))
}

func TestConfigFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".scopesrc"), path)
}

func TestLogFilePath_IsUnderAppDataDir(t *testing.T) {
	path := LogFilePath()
	require.Equal(t, "scopes.log", filepath.Base(path))
	require.Equal(t, AppDataDir(), filepath.Dir(path))
}

func TestPaths_NoDotDotComponents(t *testing.T) {
	configPath, err := ConfigFilePath()
	require.NoError(t, err)

	for _, p := range []string{AppDataDir(), AppLocalDataDir(), StoreRoot(), DatabasePath(), configPath, LogFilePath()} {
		require.NotContains(t, p, "..", "path should not contain '..': %s", p)
	}
}

func TestWriteAtomic(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, ".rc")

	require.NoError(t, WriteAtomic(path, []byte("a=1\n"), 0600))
	require.NoError(t, WriteAtomic(path, []byte("a=2\n"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "a=2\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWriteAtomic_RenameOntoDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "taken")
	require.NoError(t, os.Mkdir(target, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(target, "x"), nil, 0600))

	require.Error(t, WriteAtomic(target, []byte("x"), 0600))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file should be removed")
}
