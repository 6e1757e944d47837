package dispatchers

import "github.com/footprint-tools/scopes/internal/flags"

// NewScope creates a scope and, when parent is non-nil, attaches it under
// key. Groups get an empty child map; commands get none.
func NewScope(
	key string,
	parent *Scope,
	description string,
	set flags.Set,
	handler Handler,
	group bool,
) *Scope {
	s := &Scope{
		Name:        key,
		Description: description,
		Flags:       set,
		Handler:     handler,
	}
	if group {
		s.Scopes = make(map[string]*Scope)
	}

	if parent != nil {
		if parent.Scopes == nil {
			parent.Scopes = make(map[string]*Scope)
		}
		parent.Scopes[key] = s
	}

	return s
}

func NewRoot(spec RootSpec) *Scope {
	return NewScope(
		spec.Name,
		nil,
		spec.Description,
		spec.Flags,
		spec.Handler,
		true,
	)
}

func NewGroup(spec GroupSpec) *Scope {
	return NewScope(
		spec.Key,
		spec.Parent,
		spec.Description,
		spec.Flags,
		spec.Handler,
		true,
	)
}

func NewCommand(spec CommandSpec) *Scope {
	return NewScope(
		spec.Key,
		spec.Parent,
		spec.Description,
		spec.Flags,
		spec.Handler,
		false,
	)
}
