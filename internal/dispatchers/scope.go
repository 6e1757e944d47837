// Package dispatchers resolves an argument vector against a tree of scopes,
// then runs the selected handler or renders help.
package dispatchers

import (
	"context"
	"maps"
	"slices"

	"github.com/footprint-tools/scopes/internal/flags"
)

// Handler runs a command with its resolved flag values. The reserved keys
// "help" and "scope" are never present.
type Handler func(ctx context.Context, values flags.Values) error

// Kind distinguishes scopes that have children from leaf commands.
type Kind int

const (
	KindCommand Kind = iota
	KindScope
)

func (k Kind) String() string {
	if k == KindScope {
		return "scope"
	}
	return "command"
}

// Scope is a node in the command tree. A non-nil Scopes map, even an empty
// one, makes it a SCOPE; a nil map makes it a COMMAND. A SCOPE may also have
// a Handler, used when no child is selected.
type Scope struct {
	Name        string
	Description string
	Scopes      map[string]*Scope
	Flags       flags.Set
	Handler     Handler
}

// Kind reports whether s is a SCOPE or a COMMAND.
func (s *Scope) Kind() Kind {
	if s.Scopes != nil {
		return KindScope
	}
	return KindCommand
}

// ChildNames returns the child keys in sorted order.
func (s *Scope) ChildNames() []string {
	return slices.Sorted(maps.Keys(s.Scopes))
}
