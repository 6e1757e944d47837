package dispatchers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/flags"
	"github.com/footprint-tools/scopes/internal/ui"
)

var namedColumns = []ui.Column{
	{Key: "arg", Title: "Arg"},
	{Key: "type", Title: "Type"},
	{Key: "aliases", Title: "Alias"},
	{Key: "description", Title: "Description"},
}

// RenderHelp writes help for scope: a header, then tables of subcommands,
// positional flags, its own named flags and the named flags it inherits.
// The root (no inherited flags) also lists the help flag among its own.
func RenderHelp(w io.Writer, scope *Scope, inherited []flags.Flag, styler domain.Styler) error {
	hw := &helpWriter{w: w, styler: styler}

	hw.line(styler.Success("[HELP] ") + scope.Name + ": " + scope.Description)

	if scope.Kind() == KindScope {
		rows := make([]map[string]any, 0, len(scope.Scopes))
		for _, key := range scope.ChildNames() {
			description := scope.Scopes[key].Description
			if description == "" {
				description = "NO DESCRIPTION"
			}
			rows = append(rows, map[string]any{"command": key, "description": description})
		}
		hw.section("subcommands:", ui.NewTable([]ui.Column{
			{Key: "command", Title: "Command"},
			{Key: "description", Title: "Description"},
		}, rows))
	}

	if len(scope.Flags.Positional) > 0 {
		rows := make([]map[string]any, len(scope.Flags.Positional))
		for i, f := range scope.Flags.Positional {
			rows[i] = map[string]any{
				"position":    strconv.Itoa(i + 1),
				"arg":         f.Key,
				"type":        f.Type.Name,
				"description": f.Description,
			}
		}
		hw.section("positional arguments:", ui.NewTable([]ui.Column{
			{Key: "position", Title: "#"},
			{Key: "arg", Title: "Arg"},
			{Key: "type", Title: "Type"},
			{Key: "description", Title: "Description"},
		}, rows))
	}

	own := scope.Flags.Named
	if len(inherited) == 0 {
		own = append(own[:len(own):len(own)], helpFlag)
	}
	if len(own) > 0 {
		hw.section("named arguments:", namedTable(own))
	}

	if len(inherited) > 0 {
		hw.section("inherited named arguments:", namedTable(inherited))
	}

	return hw.err
}

func namedTable(declared []flags.Flag) *ui.Table {
	rows := make([]map[string]any, len(declared))
	for i, f := range declared {
		aliases := make([]string, len(f.Aliases))
		for j, a := range f.Aliases {
			aliases[j] = flags.FormatName(a)
		}
		rows[i] = map[string]any{
			"arg":         flags.FormatName(f.Key),
			"type":        f.Type.Name,
			"aliases":     strings.Join(aliases, "/"),
			"description": f.Description,
		}
	}
	return ui.NewTable(namedColumns, rows)
}

// helpWriter keeps the first write error.
type helpWriter struct {
	w      io.Writer
	styler domain.Styler
	err    error
}

func (hw *helpWriter) line(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = fmt.Fprintln(hw.w, s)
}

func (hw *helpWriter) section(heading string, t *ui.Table) {
	hw.line("")
	hw.line(hw.styler.Header(heading))
	hw.line(t.Render())
}
