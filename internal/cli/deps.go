// Package cli builds the command trees of the bundled tools, barnyard and
// todo, on top of an app.App.
package cli

import (
	"context"

	"github.com/footprint-tools/scopes/internal/flags"
	"github.com/footprint-tools/scopes/internal/flags/rules"
	"github.com/footprint-tools/scopes/internal/store"
	"github.com/footprint-tools/scopes/internal/ui"
)

type Deps struct {
	Store  *store.Store
	Select ui.SelectFunc
}

// field lists one string field of every object in the list at path.
func (deps Deps) field(path, name string) rules.ListFunc {
	return func(ctx context.Context, _ flags.Values) ([]any, error) {
		var elements []map[string]any
		if err := deps.Store.GetInto(ctx, path, &elements); err != nil {
			return nil, err
		}

		out := make([]any, 0, len(elements))
		for _, el := range elements {
			if v, ok := el[name]; ok {
				out = append(out, v)
			}
		}
		return out, nil
	}
}

// rows converts typed elements into table rows through their JSON form.
func rows(ctx context.Context, s *store.Store, path string) ([]map[string]any, error) {
	var out []map[string]any
	if err := s.GetInto(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}
