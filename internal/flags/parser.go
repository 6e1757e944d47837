package flags

import (
	"fmt"

	"github.com/footprint-tools/scopes/internal/usage"
)

// Accumulator is the in-flight state threaded through parsing: the values
// resolved so far and the tokens not yet consumed.
type Accumulator struct {
	Values    Values
	Remaining []string
}

// Parser consumes declared flags from the front of the accumulator's
// remaining tokens.
type Parser interface {
	Parse(declared []Flag, acc Accumulator) (Accumulator, error)
}

// Step pairs a parser with the flags it should consume.
type Step struct {
	Parser Parser
	Flags  []Flag
}

// Chain runs each step in order, seeding each with the previous step's
// values and remaining tokens. The prior map is copied, never mutated.
func Chain(tokens []string, prior Values, steps ...Step) (Accumulator, error) {
	acc := Accumulator{
		Values:    prior.Clone(),
		Remaining: append([]string(nil), tokens...),
	}
	for _, step := range steps {
		next, err := step.Parser.Parse(step.Flags, acc)
		if err != nil {
			return Accumulator{}, err
		}
		acc = next
	}
	return acc, nil
}

// fillDefaults applies the flag default, else the type default, to every
// declared flag that has no value yet.
func fillDefaults(declared []Flag, values Values) {
	for _, f := range declared {
		if _, ok := values[f.Key]; ok {
			continue
		}
		if f.Default != nil {
			values[f.Key] = f.Default
		} else if f.Type.Default != nil {
			values[f.Key] = f.Type.Default
		}
	}
}

func parseValue(f Flag, tokens []string) (any, error) {
	if len(tokens) < f.Type.Arity {
		return nil, usage.ParseFailed(f.Key, fmt.Errorf("expects %d value(s), got %d", f.Type.Arity, len(tokens)))
	}
	v, err := f.Type.parse(tokens)
	if err != nil {
		return nil, usage.ParseFailed(f.Key, err)
	}
	return v, nil
}

// NamedParser consumes --key and -a style flags while they appear
// contiguously at the head of the token stream.
type NamedParser struct{}

// Parse implements Parser.
func (NamedParser) Parse(declared []Flag, acc Accumulator) (Accumulator, error) {
	fillDefaults(declared, acc.Values)

	index := make(map[string]Flag, len(declared)*2)
	for _, f := range declared {
		for _, alias := range append([]string{f.Key}, f.Aliases...) {
			index[FormatName(alias)] = f
		}
		index["--"+f.Key] = f
	}

	for len(acc.Remaining) > 0 {
		f, ok := index[acc.Remaining[0]]
		if !ok {
			break
		}
		end := min(len(acc.Remaining), f.Type.Arity+1)
		v, err := parseValue(f, acc.Remaining[1:end])
		if err != nil {
			return Accumulator{}, err
		}
		acc.Values[f.Key] = v
		acc.Remaining = acc.Remaining[end:]
	}

	return acc, nil
}

// PositionalParser consumes flags in declaration order. A flag is skipped
// only when no tokens remain.
type PositionalParser struct{}

// Parse implements Parser.
func (PositionalParser) Parse(declared []Flag, acc Accumulator) (Accumulator, error) {
	fillDefaults(declared, acc.Values)

	for _, f := range declared {
		if len(acc.Remaining) == 0 {
			break
		}
		end := min(len(acc.Remaining), f.Type.Arity)
		v, err := parseValue(f, acc.Remaining[:end])
		if err != nil {
			return Accumulator{}, err
		}
		acc.Values[f.Key] = v
		acc.Remaining = acc.Remaining[end:]
	}

	return acc, nil
}

// FormatName renders a key or alias as it appears on the command line:
// -x for single characters, --name otherwise.
func FormatName(name string) string {
	if len([]rune(name)) == 1 {
		return "-" + name
	}
	return "--" + name
}
