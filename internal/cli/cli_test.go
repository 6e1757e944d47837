package cli_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/scopes/internal/app"
	"github.com/footprint-tools/scopes/internal/cli"
	"github.com/footprint-tools/scopes/internal/store"
	"github.com/footprint-tools/scopes/internal/testutil"
	"github.com/footprint-tools/scopes/internal/ui"
)

// fakeSelect returns the values of the items at picks.
type fakeSelect struct {
	picks []int
	seen  []ui.Item
}

func (f *fakeSelect) Select(_ context.Context, items []ui.Item, _ bool) ([]any, error) {
	f.seen = items
	out := make([]any, 0, len(f.picks))
	for _, i := range f.picks {
		out = append(out, items[i].Value)
	}
	return out, nil
}

type tool struct {
	app *app.App
	out *bytes.Buffer
}

func newTool(t *testing.T, build func(*app.App, cli.Deps), name string, sel ui.SelectFunc) *tool {
	t.Helper()

	var buf bytes.Buffer
	backend := store.NewSQLiteBackend(testutil.NewTestDB(t))
	spec := cli.BarnyardSpec
	if name == "todo" {
		spec = cli.TodoSpec
	}

	a, err := app.NewForTesting(context.Background(), spec, name, &buf, backend)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	build(a, cli.Deps{Store: a.Store, Select: sel})
	return &tool{app: a, out: &buf}
}

// run executes args and returns what was printed by this call only.
func (tl *tool) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	tl.out.Reset()
	err := tl.app.Run(context.Background(), args)
	return tl.out.String(), err
}

func (tl *tool) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := tl.run(t, args...)
	require.NoError(t, err)
	return out
}
