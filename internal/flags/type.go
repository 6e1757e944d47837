package flags

// Type describes how raw tokens convert to a typed value.
type Type struct {
	// Name is shown in help output.
	Name string
	// Arity is the number of tokens consumed after the flag token (or at the
	// flag's position, for positional flags). Presence flags use 0.
	Arity int
	// Parse receives exactly Arity tokens.
	Parse func(tokens []string) (any, error)
	// Default applies when neither the command line nor the flag supply a value.
	Default any
}

func (t Type) parse(tokens []string) (any, error) {
	if t.Parse == nil {
		if len(tokens) == 0 {
			return true, nil
		}
		return tokens[0], nil
	}
	return t.Parse(tokens)
}
