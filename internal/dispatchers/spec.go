package dispatchers

import "github.com/footprint-tools/scopes/internal/flags"

type RootSpec struct {
	Name        string
	Description string
	Flags       flags.Set
	Handler     Handler
}

type GroupSpec struct {
	Key         string
	Parent      *Scope
	Description string
	Flags       flags.Set
	Handler     Handler
}

type CommandSpec struct {
	Key         string
	Parent      *Scope
	Description string
	Flags       flags.Set
	Handler     Handler
}
