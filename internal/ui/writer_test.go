package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type mapConfig map[string]string

func (m mapConfig) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
func (m mapConfig) GetAll() (map[string]string, error) { return m, nil }
func (m mapConfig) Set(key, value string) error         { m[key] = value; return nil }
func (m mapConfig) Unset(key string) error              { delete(m, key); return nil }

func TestWriter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "a", 1)
	require.NoError(t, err)
	_, err = w.Println("done")
	require.NoError(t, err)

	require.Equal(t, "a=1\ndone\n", buf.String())
}

func TestWriter_PagerWritesDirectlyWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf,
		WithConfig(mapConfig{"pager": "less"}),
		WithEnvGetter(func(string) string { return "more" }),
	)

	w.Pager("help text\n")
	require.Equal(t, "help text\n", buf.String())
}

func TestWriter_PagerDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf, WithPagerDisabled())

	w.Pager("content")
	require.Equal(t, "content", buf.String())
}

func TestWriter_PagerArgv(t *testing.T) {
	env := func(key string) string {
		if key == "PAGER" {
			return "more"
		}
		return ""
	}
	noEnv := func(string) string { return "" }

	tests := []struct {
		name string
		cfg  mapConfig
		env  func(string) string
		want []string
	}{
		{name: "config wins", cfg: mapConfig{"pager": "less -R"}, env: env, want: []string{"less", "-R"}},
		{name: "env next", cfg: mapConfig{}, env: env, want: []string{"more"}},
		{name: "blank config skipped", cfg: mapConfig{"pager": "  "}, env: env, want: []string{"more"}},
		{name: "default", env: noEnv, want: []string{"less", "-FRSX"}},
		{name: "cat disables", cfg: mapConfig{"pager": "cat"}, env: env, want: nil},
		{name: "cat from env", env: func(string) string { return "cat -v" }, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []WriterOption{WithEnvGetter(tt.env)}
			if tt.cfg != nil {
				opts = append(opts, WithConfig(tt.cfg))
			}
			w := NewWriterTo(&bytes.Buffer{}, opts...)
			require.Equal(t, tt.want, w.pagerArgv())
		})
	}
}
