// Package config reads and edits the key=value rc file (~/.scopesrc).
// Blank lines and lines starting with # are comments; values may be
// double-quoted and may carry a trailing " # comment".
package config

import (
	"fmt"
	"strings"
)

// Parse turns rc lines into a key/value map. Later keys win.
func Parse(lines []string) (map[string]string, error) {
	out := make(map[string]string)

	for i, line := range lines {
		if i == 0 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(trimmed, "=")
		if !ok {
			return nil, fmt.Errorf("config: line %d: missing '='", i+1)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("config: line %d: empty key", i+1)
		}

		out[key] = parseValue(value)
	}

	return out, nil
}

func parseValue(raw string) string {
	value := strings.TrimSpace(raw)

	if len(value) >= 2 && value[0] == '"' {
		if end := strings.IndexByte(value[1:], '"'); end >= 0 {
			return value[1 : end+1]
		}
	}

	if idx := strings.Index(value, " #"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return value
}

func formatValue(value string) string {
	if strings.ContainsAny(value, " #") {
		return `"` + value + `"`
	}
	return value
}
