package config

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/scopes/internal/config"
	"github.com/footprint-tools/scopes/internal/dispatchers"
	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/testutil"
	"github.com/footprint-tools/scopes/internal/ui"
	"github.com/footprint-tools/scopes/internal/usage"
)

// memDeps keeps the rc file in memory.
type memDeps struct {
	lines  []string
	writes int
	picked []any
	selErr error
}

func (m *memDeps) deps() Deps {
	return Deps{
		ReadLines:  func() ([]string, error) { return append([]string(nil), m.lines...), nil },
		WriteLines: func(lines []string) error { m.lines = lines; m.writes++; return nil },
		Set:        config.Set,
		Unset:      config.Unset,
		Get: func(key string) (string, bool) {
			cfg, _ := config.Parse(m.lines)
			v, ok := cfg[key]
			return v, ok
		},
		GetAll: func() (map[string]string, error) {
			set, err := config.Parse(m.lines)
			if err != nil {
				return nil, err
			}
			all := make(map[string]string, len(domain.ConfigKeys))
			for _, key := range domain.ConfigKeys {
				all[key.Name] = key.Default
			}
			maps.Copy(all, set)
			return all, nil
		},
		WithLock: func(fn func() error) error { return fn() },
		Select: func(_ context.Context, items []ui.Item, multiple bool) ([]any, error) {
			return m.picked, m.selErr
		},
	}
}

func run(t *testing.T, m *memDeps, args ...string) (string, error) {
	t.Helper()
	root := dispatchers.NewRoot(dispatchers.RootSpec{Name: "tool"})
	Register(root, m.deps())

	var buf bytes.Buffer
	ctx := ui.WithHistory(context.Background(), ui.NewHistory(&buf))
	out, _ := testutil.NewBufferWriter()
	err := dispatchers.New(dispatchers.WithOutput(out)).Run(ctx, root, args)
	return buf.String(), err
}

func TestGet(t *testing.T) {
	m := &memDeps{lines: []string{"theme=ocean"}}

	out, err := run(t, m, "config", "get", "theme")
	require.NoError(t, err)
	require.Equal(t, "ocean\n", out)
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := run(t, &memDeps{}, "config", "get", "nonexistent")
	require.Error(t, err)
	require.True(t, usage.Is(err, usage.ErrValidation))
	require.Contains(t, err.Error(), `flag "key" is invalid`)
}

func TestGet_MissingKey(t *testing.T) {
	_, err := run(t, &memDeps{}, "config", "get")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Must be supplied.")
}

func TestSet_AddNew(t *testing.T) {
	m := &memDeps{}

	out, err := run(t, m, "config", "set", "theme", "mono")
	require.NoError(t, err)
	require.Equal(t, "SUCCESS: added theme=mono\n", out)
	require.Equal(t, []string{"theme=mono"}, m.lines)
}

func TestSet_UpdateExisting(t *testing.T) {
	m := &memDeps{lines: []string{"# c", "theme=default"}}

	out, err := run(t, m, "config", "set", "theme", "mono")
	require.NoError(t, err)
	require.Contains(t, out, "updated theme=mono")
	require.Equal(t, []string{"# c", "theme=mono"}, m.lines)
}

func TestSet_MissingValue(t *testing.T) {
	m := &memDeps{}

	_, err := run(t, m, "config", "set", "theme")
	require.Error(t, err)
	require.Contains(t, err.Error(), `flag "value" is invalid`)
	require.Zero(t, m.writes)
}

func TestSet_RestrictedValues(t *testing.T) {
	tests := []struct {
		key, value string
		want       string
	}{
		{key: "log_level", value: "verbose", want: "Must be one of debug, info, warn, error"},
		{key: "store_backend", value: "redis", want: "Must be one of file, sqlite"},
		{key: "enable_log", value: "yes", want: "Must be one of true, false"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := &memDeps{lines: []string{tt.key + "=" + "x"}}

			_, err := run(t, m, "config", "set", tt.key, tt.value)
			require.Error(t, err)
			require.True(t, usage.Is(err, usage.ErrValidation))
			require.Contains(t, err.Error(), `flag "value" is invalid: `+tt.want)
			require.Zero(t, m.writes)
		})
	}
}

func TestSet_RestrictedValueAccepted(t *testing.T) {
	m := &memDeps{lines: []string{"log_level=verbose"}}

	out, err := run(t, m, "config", "set", "log_level", "warn")
	require.NoError(t, err)
	require.Contains(t, out, "updated log_level=warn")
	require.Equal(t, []string{"log_level=warn"}, m.lines)

	_, err = run(t, m, "config", "set", "pager", "most -s")
	require.NoError(t, err)
}

func TestUnset(t *testing.T) {
	m := &memDeps{lines: []string{"theme=mono", "pager=cat"}}

	out, err := run(t, m, "config", "unset", "theme")
	require.NoError(t, err)
	require.Contains(t, out, "unset theme")
	require.Equal(t, []string{"pager=cat"}, m.lines)
}

func TestUnset_NotSet(t *testing.T) {
	m := &memDeps{lines: []string{"pager=cat"}}

	out, err := run(t, m, "config", "unset", "theme")
	require.NoError(t, err)
	require.Contains(t, out, "WARN: theme was not set")
}

func TestUnset_All(t *testing.T) {
	m := &memDeps{lines: []string{"theme=mono", "pager=cat"}}

	_, err := run(t, m, "config", "unset", "--all")
	require.NoError(t, err)
	require.Empty(t, m.lines)
}

func TestUnset_NeedsKeyOrAll(t *testing.T) {
	_, err := run(t, &memDeps{}, "config", "unset")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pass a key or --all")

	_, err = run(t, &memDeps{}, "config", "unset", "theme", "--all")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--all does not take a key")
}

func TestList(t *testing.T) {
	m := &memDeps{lines: []string{"theme=mono", "log_level=debug", "color_info=33"}}

	out, err := run(t, m, "config", "list")
	require.NoError(t, err)
	require.Contains(t, out, "[Display]\n  pager=less -FRSX\n  theme=mono\n")
	require.Contains(t, out, "[Store]\n  store_dir=\n  store_backend=file\n")
	require.Contains(t, out, "  log_level=debug\n")
	require.Contains(t, out, "  color_info=33\n")
	require.NotContains(t, out, "color_success")

	out, err = run(t, m, "config", "list", "-a")
	require.NoError(t, err)
	require.Contains(t, out, "  color_success=\n")
}

func TestTheme_Named(t *testing.T) {
	m := &memDeps{}

	out, err := run(t, m, "config", "theme", "ocean-dark")
	require.NoError(t, err)
	require.Contains(t, out, "theme set to ocean-dark")
	require.Equal(t, []string{"theme=ocean-dark"}, m.lines)
}

func TestTheme_UnknownName(t *testing.T) {
	_, err := run(t, &memDeps{}, "config", "theme", "neon")
	require.Error(t, err)
	require.True(t, usage.Is(err, usage.ErrValidation))
}

func TestTheme_Picked(t *testing.T) {
	m := &memDeps{picked: []any{"mono"}}

	_, err := run(t, m, "config", "theme")
	require.NoError(t, err)
	require.Equal(t, []string{"theme=mono"}, m.lines)
}

func TestTheme_PickCancelled(t *testing.T) {
	m := &memDeps{selErr: ui.ErrCancelled}

	out, err := run(t, m, "config", "theme")
	require.NoError(t, err)
	require.Contains(t, out, "theme unchanged")
	require.Zero(t, m.writes)
}

func TestTheme_PickError(t *testing.T) {
	boom := errors.New("no tty")
	_, err := run(t, &memDeps{selErr: boom}, "config", "theme")
	require.ErrorIs(t, err, boom)
}
