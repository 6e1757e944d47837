// Package flags declares command-line flags, the types that convert raw
// tokens into values, and the named/positional parsers that consume a token
// stream into a shared accumulator.
package flags

import "context"

// Flag declares a single flag. Aliases are only meaningful for named flags.
type Flag struct {
	Key         string
	Type        Type
	Default     any // nil means no flag-level default
	Description string
	Rules       []RuleFactory
	Aliases     []string
}

// Set groups the flags a scope declares.
type Set struct {
	Named      []Flag
	Positional []Flag
}

// Rule validates a single flag's resolved value. ok is false when the flag
// was not supplied and has no default.
type Rule interface {
	Check(ctx context.Context, value any, ok bool) (bool, error)
	Message(ctx context.Context) (string, error)
}

// RuleFactory builds a Rule from the full set of resolved values, which lets
// a flag's rules depend on other flags (e.g. to > from). Factories are called
// again on every validation pass.
type RuleFactory func(values Values) Rule
