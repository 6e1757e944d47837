package config

import "strings"

// Set replaces the value of key, keeping any inline comment, or appends
// a new line. It reports whether key was already present.
func Set(lines []string, key, value string) ([]string, bool) {
	entry := key + "=" + formatValue(value)

	for i, line := range lines {
		k, rest, ok := splitEntry(line)
		if !ok || k != key {
			continue
		}

		if idx := strings.Index(rest, " #"); idx >= 0 && !strings.HasPrefix(strings.TrimSpace(rest), `"`) {
			lines[i] = entry + " " + strings.TrimSpace(rest[idx:])
		} else {
			lines[i] = entry
		}
		return lines, true
	}

	return append(lines, entry), false
}

// Unset drops every line for key and reports whether one was removed.
func Unset(lines []string, key string) ([]string, bool) {
	var out []string
	removed := false

	for _, line := range lines {
		if k, _, ok := splitEntry(line); ok && k == key {
			removed = true
			continue
		}
		out = append(out, line)
	}

	return out, removed
}

// splitEntry returns the key and raw value of a non-comment line.
func splitEntry(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}

	key, rest, ok := strings.Cut(trimmed, "=")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), rest, true
}
