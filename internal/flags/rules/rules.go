// Package rules provides the built-in flag validation rules. Each constructor
// returns a flags.RuleFactory; the factory is re-run on every validation pass
// with the resolved values so rules can depend on other flags.
//
// Every rule except Required passes when the flag was not supplied.
package rules

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/footprint-tools/scopes/internal/flags"
)

// ListFunc produces a list of candidate values from the resolved flags.
type ListFunc func(ctx context.Context, values flags.Values) ([]any, error)

// ValueFunc produces a single value from the resolved flags.
type ValueFunc func(ctx context.Context, values flags.Values) (any, error)

// Items returns a ListFunc yielding a fixed list.
func Items(items ...any) ListFunc {
	return func(context.Context, flags.Values) ([]any, error) {
		return items, nil
	}
}

// Strings returns a ListFunc yielding a fixed list of strings.
func Strings(items ...string) ListFunc {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return Items(out...)
}

// Const returns a ValueFunc yielding v.
func Const(v any) ValueFunc {
	return func(context.Context, flags.Values) (any, error) {
		return v, nil
	}
}

// rule adapts a pair of funcs to flags.Rule.
type rule struct {
	check   func(ctx context.Context, value any) (bool, error)
	message func(ctx context.Context) (string, error)
	// required rules see absent values; all others pass vacuously
	required bool
}

func (r rule) Check(ctx context.Context, value any, ok bool) (bool, error) {
	if !ok {
		return !r.required, nil
	}
	return r.check(ctx, value)
}

func (r rule) Message(ctx context.Context) (string, error) {
	return r.message(ctx)
}

func staticMessage(msg string) func(context.Context) (string, error) {
	return func(context.Context) (string, error) {
		return msg, nil
	}
}

func listMessage(prefix string, list ListFunc, values flags.Values) func(context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		items, err := list(ctx, values)
		if err != nil {
			return "", err
		}
		return prefix + join(items), nil
	}
}

// Required fails when the flag was not supplied and has no default.
func Required() flags.RuleFactory {
	return func(flags.Values) flags.Rule {
		return rule{
			required: true,
			check: func(context.Context, any) (bool, error) {
				return true, nil
			},
			message: staticMessage("Must be supplied."),
		}
	}
}

// OneOf requires the value to be a member of the list.
func OneOf(allowed ListFunc) flags.RuleFactory {
	return func(values flags.Values) flags.Rule {
		return rule{
			check: func(ctx context.Context, value any) (bool, error) {
				items, err := allowed(ctx, values)
				if err != nil {
					return false, err
				}
				return contains(items, value), nil
			},
			message: listMessage("Must be one of ", allowed, values),
		}
	}
}

// AllOneOf requires every element of a list value to be a member.
func AllOneOf(allowed ListFunc) flags.RuleFactory {
	return func(values flags.Values) flags.Rule {
		return rule{
			check: func(ctx context.Context, value any) (bool, error) {
				elems, err := asList(value)
				if err != nil {
					return false, err
				}
				items, err := allowed(ctx, values)
				if err != nil {
					return false, err
				}
				for _, e := range elems {
					if !contains(items, e) {
						return false, nil
					}
				}
				return true, nil
			},
			message: listMessage("All must be one of ", allowed, values),
		}
	}
}

// NotPartOf requires the value to not be a member of the list.
func NotPartOf(disallowed ListFunc) flags.RuleFactory {
	return func(values flags.Values) flags.Rule {
		return rule{
			check: func(ctx context.Context, value any) (bool, error) {
				items, err := disallowed(ctx, values)
				if err != nil {
					return false, err
				}
				return !contains(items, value), nil
			},
			message: listMessage("Must not be part of ", disallowed, values),
		}
	}
}

// NoneArePartOf requires no element of a list value to be a member.
func NoneArePartOf(disallowed ListFunc) flags.RuleFactory {
	return func(values flags.Values) flags.Rule {
		return rule{
			check: func(ctx context.Context, value any) (bool, error) {
				elems, err := asList(value)
				if err != nil {
					return false, err
				}
				items, err := disallowed(ctx, values)
				if err != nil {
					return false, err
				}
				for _, e := range elems {
					if contains(items, e) {
						return false, nil
					}
				}
				return true, nil
			},
			message: listMessage("None must be part of ", disallowed, values),
		}
	}
}

// Unique requires a list value to hold no duplicate elements.
func Unique() flags.RuleFactory {
	return func(flags.Values) flags.Rule {
		return rule{
			check: func(_ context.Context, value any) (bool, error) {
				elems, err := asList(value)
				if err != nil {
					return false, err
				}
				for i := range elems {
					if contains(elems[:i], elems[i]) {
						return false, nil
					}
				}
				return true, nil
			},
			message: staticMessage("Elements must be unique."),
		}
	}
}

// Length requires a string (in runes) or list value to have exactly n
// elements.
func Length(n ValueFunc) flags.RuleFactory {
	return func(values flags.Values) flags.Rule {
		return rule{
			check: func(ctx context.Context, value any) (bool, error) {
				want, err := n(ctx, values)
				if err != nil {
					return false, err
				}
				got, err := length(value)
				if err != nil {
					return false, err
				}
				return equal(got, want), nil
			},
			message: func(ctx context.Context) (string, error) {
				want, err := n(ctx, values)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Must have length %s.", format(want)), nil
			},
		}
	}
}

// GreaterThan requires the value to be strictly greater than the bound.
func GreaterThan(bound ValueFunc) flags.RuleFactory {
	return ordered(bound, 1, "Must be greater than ")
}

// LessThan requires the value to be strictly less than the bound.
func LessThan(bound ValueFunc) flags.RuleFactory {
	return ordered(bound, -1, "Must be less than ")
}

// Positive requires a numeric value greater than zero.
func Positive() flags.RuleFactory {
	return GreaterThan(Const(0))
}

// Negative requires a numeric value less than zero.
func Negative() flags.RuleFactory {
	return LessThan(Const(0))
}

func ordered(bound ValueFunc, want int, prefix string) flags.RuleFactory {
	return func(values flags.Values) flags.Rule {
		return rule{
			check: func(ctx context.Context, value any) (bool, error) {
				b, err := bound(ctx, values)
				if err != nil {
					return false, err
				}
				c, err := compare(value, b)
				if err != nil {
					return false, err
				}
				return c == want, nil
			},
			message: func(ctx context.Context) (string, error) {
				b, err := bound(ctx, values)
				if err != nil {
					return "", err
				}
				return prefix + format(b), nil
			},
		}
	}
}

// PathOptions configures PathExists.
type PathOptions struct {
	// Parent checks the containing directory instead of the path itself.
	Parent bool
}

// PathExists requires the path (or its parent directory) to exist.
func PathExists(opts PathOptions) flags.RuleFactory {
	return func(flags.Values) flags.Rule {
		return rule{
			check: func(_ context.Context, value any) (bool, error) {
				p, ok := value.(string)
				if !ok {
					return false, fmt.Errorf("expected a path, got %T", value)
				}
				if opts.Parent {
					p = filepath.Dir(p)
				}
				_, err := os.Stat(p)
				return err == nil, nil
			},
			message: staticMessage("Path must exist."),
		}
	}
}

// CheckFunc is a caller-supplied predicate over a supplied value.
type CheckFunc func(ctx context.Context, value any, values flags.Values) (bool, error)

// Custom wraps a predicate. It is only called for supplied values.
func Custom(fn CheckFunc) flags.RuleFactory {
	return CustomMessage("Custom Flag Rule", fn)
}

// CustomMessage is Custom with a failure message.
func CustomMessage(msg string, fn CheckFunc) flags.RuleFactory {
	return func(values flags.Values) flags.Rule {
		return rule{
			check: func(ctx context.Context, value any) (bool, error) {
				return fn(ctx, value, values)
			},
			message: staticMessage(msg),
		}
	}
}

func join(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = format(item)
	}
	return strings.Join(parts, ", ")
}

func format(v any) string {
	if t, ok := v.(time.Time); ok {
		return t.Format(time.DateOnly)
	}
	return fmt.Sprint(v)
}
