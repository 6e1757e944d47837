package flags

import (
	"fmt"
	"maps"
	"time"
)

// Values maps flag keys to resolved, typed values. A key that is absent was
// not supplied and had no default.
type Values map[string]any

// Clone returns a shallow copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	maps.Copy(out, v)
	return out
}

// Without returns a copy with the given keys removed.
func (v Values) Without(keys ...string) Values {
	out := v.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// Has returns true if the key resolved to any value.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Bool returns true if the flag resolved to true (presence flags).
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// String returns the value of a flag, or defaultVal if not present.
func (v Values) String(key, defaultVal string) string {
	if s, ok := v[key].(string); ok {
		return s
	}
	return defaultVal
}

// Int returns the integer value of a flag, or defaultVal if not present.
func (v Values) Int(key string, defaultVal int64) int64 {
	switch n := v[key].(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	}
	return defaultVal
}

// Float returns the float value of a flag, or defaultVal if not present.
func (v Values) Float(key string, defaultVal float64) float64 {
	switch n := v[key].(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return defaultVal
}

// Time returns the date value of a flag, or nil if not present.
func (v Values) Time(key string) *time.Time {
	if t, ok := v[key].(time.Time); ok {
		return &t
	}
	return nil
}

// List returns the elements of a list flag.
func (v Values) List(key string) []any {
	switch l := v[key].(type) {
	case []any:
		return l
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out
	}
	return nil
}

// Strings returns the elements of a list flag formatted as strings.
func (v Values) Strings(key string) []string {
	list := v.List(key)
	if list == nil {
		return nil
	}
	out := make([]string, len(list))
	for i, e := range list {
		if s, ok := e.(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(e)
	}
	return out
}
