// Package store persists one JSON document per named store. Values are
// addressed by dot-separated paths ("todos", "settings.theme") and every
// write loads, mutates and saves the whole document through a backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/log"
	"github.com/footprint-tools/scopes/internal/paths"
)

var (
	ErrInvalidName = errors.New("store: invalid name")
	ErrInvalidPath = errors.New("store: invalid path")
	ErrNotObject   = errors.New("store: value is not an object")
	ErrNotList     = errors.New("store: value is not a list")
)

// Store is a registered document. Methods are safe for concurrent use
// within one process.
type Store struct {
	name    string
	backend domain.DocumentBackend
	logger  domain.Logger
	mu      sync.Mutex
}

type options struct {
	root    string
	backend domain.DocumentBackend
	logger  domain.Logger
}

// Option configures Register.
type Option func(*options)

// WithRoot sets the directory of the default file backend.
func WithRoot(dir string) Option {
	return func(o *options) { o.root = dir }
}

// WithBackend replaces the default file backend.
func WithBackend(b domain.DocumentBackend) Option {
	return func(o *options) { o.backend = b }
}

// WithLogger sets the logger for store activity.
func WithLogger(l domain.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Register opens the store called name, creating an empty document if
// none exists. The default backend keeps <root>/<name>/data.json with
// root ~/.scopes.
func Register(ctx context.Context, name string, opts ...Option) (*Store, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	o := options{logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		if o.root == "" {
			o.root = paths.StoreRoot()
		}
		o.backend = NewFileBackend(o.root)
	}

	s := &Store{name: name, backend: o.backend, logger: o.logger}

	data, err := s.backend.Load(name)
	if err != nil {
		return nil, fmt.Errorf("store %s: load: %w", name, err)
	}
	if data == nil {
		if err := s.backend.Save(name, []byte("{}")); err != nil {
			return nil, fmt.Errorf("store %s: create: %w", name, err)
		}
		s.logger.Debug("store: created %s", name)
	}

	return s, nil
}

// Name returns the store name.
func (s *Store) Name() string {
	return s.name
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Get returns the value at path, or def when any segment is missing.
func (s *Store) Get(ctx context.Context, path string, def any) (any, error) {
	keys, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if v, ok := lookup(doc, keys); ok {
		return v, nil
	}
	return def, nil
}

// GetInto decodes the value at path into dst. A missing value leaves dst
// untouched.
func (s *Store) GetInto(ctx context.Context, path string, dst any) error {
	v, err := s.Get(ctx, path, nil)
	if err != nil || v == nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store %s: encode %s: %w", s.name, path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("store %s: decode %s: %w", s.name, path, err)
	}
	return nil
}

// Set stores v at path. Missing or non-object parents are replaced by
// objects.
func (s *Store) Set(ctx context.Context, path string, v any) error {
	return s.Update(ctx, path, func(any) (any, error) { return v, nil })
}

// Update replaces the value at path with fn(current). current is nil when
// the path is missing. fn runs while the store is locked and must not call
// back into it.
func (s *Store) Update(ctx context.Context, path string, fn func(current any) (any, error)) error {
	keys, err := splitPath(path)
	if err != nil {
		return err
	}

	return s.mutate(ctx, func(doc map[string]any) error {
		current, _ := lookup(doc, keys)
		next, err := fn(current)
		if err != nil {
			return err
		}
		assign(doc, keys, next)
		return nil
	})
}

// Append adds items to the list at path. A missing or non-list value is
// replaced by items.
func (s *Store) Append(ctx context.Context, path string, items ...any) error {
	return s.Update(ctx, path, func(current any) (any, error) {
		list, _ := current.([]any)
		return append(append([]any{}, list...), items...), nil
	})
}

// KeyStrategy picks the key Add gives a new element.
type KeyStrategy int

const (
	// KeyLinear uses one more than the largest numeric key: "1", "2", ...
	KeyLinear KeyStrategy = iota
	// KeyUUID uses a random UUID.
	KeyUUID
)

// Add inserts v into the object at container under a generated key and
// returns the key.
func (s *Store) Add(ctx context.Context, container string, v any, strategy KeyStrategy) (string, error) {
	keys, err := splitPath(container)
	if err != nil {
		return "", err
	}

	var key string
	err = s.mutate(ctx, func(doc map[string]any) error {
		elements, err := objectAt(doc, keys)
		if err != nil {
			return err
		}
		key = nextKey(elements, strategy)
		elements[key] = v
		assign(doc, keys, elements)
		return nil
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// Delete removes the value at path and returns it, or nil when it was
// missing. The parent chain is created as for Set.
func (s *Store) Delete(ctx context.Context, path string) (any, error) {
	keys, err := splitPath(path)
	if err != nil {
		return nil, err
	}

	var removed any
	err = s.mutate(ctx, func(doc map[string]any) error {
		parent := ensureParent(doc, keys)
		last := keys[len(keys)-1]
		removed = parent[last]
		delete(parent, last)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// UpdateElement replaces every element of the list at path for which
// match reports true with update(element). A missing list is stored empty.
func (s *Store) UpdateElement(ctx context.Context, path string, match func(any) bool, update func(any) (any, error)) error {
	return s.Update(ctx, path, func(current any) (any, error) {
		list, err := asList(current)
		if err != nil {
			return nil, err
		}

		out := make([]any, len(list))
		for i, el := range list {
			if !match(el) {
				out[i] = el
				continue
			}
			if out[i], err = update(el); err != nil {
				return nil, err
			}
		}
		return out, nil
	})
}

// DeleteElement removes every element of the list at path for which match
// reports true and returns how many were removed.
func (s *Store) DeleteElement(ctx context.Context, path string, match func(any) bool) (int, error) {
	removed := 0
	err := s.Update(ctx, path, func(current any) (any, error) {
		list, err := asList(current)
		if err != nil {
			return nil, err
		}

		out := make([]any, 0, len(list))
		for _, el := range list {
			if match(el) {
				removed++
				continue
			}
			out = append(out, el)
		}
		return out, nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// GetKeyed returns the elements of the object at container sorted by key.
// Object elements gain a "key" field; other values are wrapped as
// {"key": k, "value": v}.
func (s *Store) GetKeyed(ctx context.Context, container string) ([]map[string]any, error) {
	v, err := s.Get(ctx, container, nil)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return []map[string]any{}, nil
	}

	elements, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotObject, container)
	}

	out := make([]map[string]any, 0, len(elements))
	for _, key := range sortedKeys(elements) {
		entry := map[string]any{}
		if obj, ok := elements[key].(map[string]any); ok {
			for k, v := range obj {
				entry[k] = v
			}
		} else {
			entry["value"] = elements[key]
		}
		entry["key"] = key
		out = append(out, entry)
	}
	return out, nil
}

func (s *Store) mutate(ctx context.Context, fn func(doc map[string]any) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store %s: encode: %w", s.name, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.backend.Save(s.name, data); err != nil {
		s.logger.Error("store: save %s failed: %v", s.name, err)
		return fmt.Errorf("store %s: save: %w", s.name, err)
	}
	s.logger.Debug("store: saved %s (%d bytes)", s.name, len(data))
	return nil
}

func (s *Store) load(ctx context.Context) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := s.backend.Load(s.name)
	if err != nil {
		return nil, fmt.Errorf("store %s: load: %w", s.name, err)
	}

	doc := map[string]any{}
	if len(data) == 0 {
		return doc, nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store %s: decode: %w", s.name, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}
