package flags

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// String returns a single-token identity type.
func String() Type {
	return Type{
		Name:  "STRING",
		Arity: 1,
		Parse: func(tokens []string) (any, error) {
			return tokens[0], nil
		},
	}
}

// Int parses a base-10 integer into an int64.
func Int() Type {
	return Type{
		Name:  "INT",
		Arity: 1,
		Parse: func(tokens []string) (any, error) {
			n, err := strconv.ParseInt(strings.TrimSpace(tokens[0]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%q is not an integer", tokens[0])
			}
			return n, nil
		},
	}
}

// Float parses a float64.
func Float() Type {
	return Type{
		Name:  "FLOAT",
		Arity: 1,
		Parse: func(tokens []string) (any, error) {
			f, err := strconv.ParseFloat(strings.TrimSpace(tokens[0]), 64)
			if err != nil {
				return nil, fmt.Errorf("%q is not a number", tokens[0])
			}
			return f, nil
		},
	}
}

// Presence consumes no tokens and resolves to true when the flag is seen.
// An absent presence flag stays unset rather than false.
func Presence() Type {
	return Type{
		Name:  "PRESENCE",
		Arity: 0,
		Parse: func([]string) (any, error) {
			return true, nil
		},
	}
}

// ListOption configures a List type.
type ListOption func(*listConfig)

type listConfig struct {
	separator string
	element   Type
}

// WithSeparator sets the list separator. The default is ",".
func WithSeparator(sep string) ListOption {
	return func(c *listConfig) {
		c.separator = sep
	}
}

// WithElement sets the element type. The default is String().
func WithElement(t Type) ListOption {
	return func(c *listConfig) {
		c.element = t
	}
}

// List splits one token on a separator and parses each element with the
// element type. The resolved value is a []any; absent lists default to empty.
func List(opts ...ListOption) Type {
	cfg := listConfig{separator: ",", element: String()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return Type{
		Name:  "LIST[" + cfg.element.Name + "]",
		Arity: 1,
		Parse: func(tokens []string) (any, error) {
			parts := strings.Split(tokens[0], cfg.separator)
			out := make([]any, 0, len(parts))
			for i, part := range parts {
				v, err := cfg.element.parse([]string{part})
				if err != nil {
					return nil, fmt.Errorf("element %d: %w", i, err)
				}
				out = append(out, v)
			}
			return out, nil
		},
		Default: []any{},
	}
}

// Date parses Y[-M[-D]]. A missing month is January and a missing day is the
// first; the time is midnight UTC. Out-of-range components normalize the way
// time.Date does.
func Date() Type {
	return Type{
		Name:  "DATE(yyyy-mm-dd)",
		Arity: 1,
		Parse: func(tokens []string) (any, error) {
			return parseDate(tokens[0])
		},
	}
}

func parseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) > 3 {
		return time.Time{}, fmt.Errorf("%q is not a date (want yyyy-mm-dd)", s)
	}

	// year, month, day with right-padded defaults
	comps := [3]int{0, 1, 1}
	for i, part := range parts {
		if part == "" {
			if i == 0 {
				return time.Time{}, errors.New("date is missing a year")
			}
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, fmt.Errorf("%q is not a date (want yyyy-mm-dd)", s)
		}
		comps[i] = n
	}

	return time.Date(comps[0], time.Month(comps[1]), comps[2], 0, 0, 0, 0, time.UTC), nil
}

// JSON decodes one token as a JSON document.
func JSON() Type {
	return Type{
		Name:  "JSON",
		Arity: 1,
		Parse: func(tokens []string) (any, error) {
			var v any
			if err := json.Unmarshal([]byte(tokens[0]), &v); err != nil {
				return nil, fmt.Errorf("invalid JSON: %w", err)
			}
			return v, nil
		},
	}
}

// Path resolves one token against the working directory and cleans it.
func Path() Type {
	return Type{
		Name:  "FILE",
		Arity: 1,
		Parse: func(tokens []string) (any, error) {
			p, err := filepath.Abs(tokens[0])
			if err != nil {
				return nil, fmt.Errorf("resolve path %q: %w", tokens[0], err)
			}
			return p, nil
		},
	}
}
