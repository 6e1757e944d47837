package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	t.Setenv("SCOPES_LOG_LEVEL", "")
	return home
}

func TestRun(t *testing.T) {
	home := setupHome(t)
	ctx := context.Background()

	var stderr bytes.Buffer
	require.Equal(t, 0, run(ctx, []string{"add", "--name", "bessie"}, &stderr))
	require.Empty(t, stderr.String())

	data, err := os.ReadFile(filepath.Join(home, ".scopes", "barnyard", "data.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), "bessie")
}

func TestRun_ValidationError(t *testing.T) {
	setupHome(t)

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"build", "pen", "--size", "40"}, &stderr)
	require.NotEqual(t, 0, code)
	require.Contains(t, stderr.String(), "ERROR: ")
	require.Contains(t, stderr.String(), `flag "size" is invalid`)
}

func TestRun_UnknownScope(t *testing.T) {
	setupHome(t)

	var stderr bytes.Buffer
	code := run(context.Background(), []string{"bild"}, &stderr)
	require.NotEqual(t, 0, code)
	require.Contains(t, stderr.String(), "build")
}
