package store

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func splitPath(path string) ([]string, error) {
	keys := strings.Split(path, ".")
	if slices.Contains(keys, "") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	return keys, nil
}

// lookup walks keys from doc. A non-object on the way counts as missing.
func lookup(doc map[string]any, keys []string) (any, bool) {
	var cur any = doc
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[key]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// ensureParent returns the object holding the last key, replacing missing
// or non-object segments with empty objects.
func ensureParent(doc map[string]any, keys []string) map[string]any {
	cur := doc
	for _, key := range keys[:len(keys)-1] {
		next, ok := cur[key].(map[string]any)
		if !ok {
			next = map[string]any{}
			cur[key] = next
		}
		cur = next
	}
	return cur
}

func assign(doc map[string]any, keys []string, v any) {
	ensureParent(doc, keys)[keys[len(keys)-1]] = v
}

// objectAt returns a copy of the object at keys, or an empty object when
// nothing is stored there.
func objectAt(doc map[string]any, keys []string) (map[string]any, error) {
	v, _ := lookup(doc, keys)
	if v == nil {
		return map[string]any{}, nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, strings.Join(keys, "."))
	}
	return maps.Clone(obj), nil
}

func asList(v any) ([]any, error) {
	if v == nil {
		return []any{}, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, ErrNotList
	}
	return list, nil
}

func nextKey(elements map[string]any, strategy KeyStrategy) string {
	if strategy == KeyUUID {
		return uuid.NewString()
	}

	highest := 0
	for key := range elements {
		if n, err := strconv.Atoi(key); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}

// sortedKeys orders numeric keys by value, before any other keys, which
// sort as strings.
func sortedKeys(elements map[string]any) []string {
	keys := slices.Collect(maps.Keys(elements))
	slices.SortFunc(keys, func(a, b string) int {
		na, errA := strconv.Atoi(a)
		nb, errB := strconv.Atoi(b)
		switch {
		case errA == nil && errB == nil:
			return cmp.Compare(na, nb)
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		}
		return strings.Compare(a, b)
	})
	return keys
}
