package config

import (
	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/paths"
)

// Defaults holds values computed at runtime. Other keys default to
// domain.ConfigKeys.
var Defaults = map[string]func() string{
	"store_dir": paths.StoreRoot,
}

func defaultValue(key string) string {
	if fn, ok := Defaults[key]; ok {
		return fn()
	}
	value, _ := domain.GetDefaultValue(key)
	return value
}

func read() (map[string]string, error) {
	lines, err := ReadLines()
	if err != nil {
		return nil, err
	}
	return Parse(lines)
}

// Get returns the value for key from the rc file, falling back to its
// default. Unknown keys absent from the file are not found.
func Get(key string) (string, bool) {
	if cfg, err := read(); err == nil {
		if value, ok := cfg[key]; ok {
			return value, true
		}
	}

	if !domain.IsValidConfigKey(key) {
		return "", false
	}
	return defaultValue(key), true
}

// GetAll returns the defaults of every known key overlaid with the file.
// An unreadable file yields the defaults alone.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = defaultValue(key.Name)
	}

	cfg, err := read()
	if err != nil {
		return result, nil
	}
	for key, value := range cfg {
		result[key] = value
	}
	return result, nil
}
