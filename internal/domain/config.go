package domain

import "slices"

// ConfigKey describes one key of the rc file.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // heading in `config list`
	HideIfEmpty bool   // listed only when set
	Allowed     []string
}

// Allows reports whether value may be stored under k. Keys without an
// Allowed set take any value.
func (k ConfigKey) Allows(value string) bool {
	return len(k.Allowed) == 0 || slices.Contains(k.Allowed, value)
}

func colorOverride(role, what string) ConfigKey {
	return ConfigKey{
		Name:        "color_" + role,
		Description: "Override the theme's " + what,
		Section:     "Color Overrides",
		HideIfEmpty: true,
	}
}

// ConfigKeys is every known key, in `config list` order. Sections appear in
// the order their first key does.
var ConfigKeys = []ConfigKey{
	{Name: "pager", Default: "less -FRSX", Description: "Pager command for long output", Section: "Display"},
	{Name: "theme", Default: "default", Description: "Color theme, optionally suffixed -dark or -light", Section: "Display"},

	{Name: "enable_log", Default: "false", Description: "Write a log file (true/false)", Section: "Logging", Allowed: []string{"true", "false"}},
	{Name: "log_level", Default: "info", Description: "Minimum log level: debug, info, warn, error", Section: "Logging", Allowed: []string{"debug", "info", "warn", "error"}},

	// store_dir defaults to paths.StoreRoot(); see config.Defaults.
	{Name: "store_dir", Description: "Directory holding per-tool data", Section: "Store"},
	{Name: "store_backend", Default: "file", Description: "Where documents live: file or sqlite", Section: "Store", Allowed: []string{"file", "sqlite"}},

	colorOverride("success", "success color (ANSI 0-255)"),
	colorOverride("warning", "warning color (ANSI 0-255)"),
	colorOverride("error", "error color (ANSI 0-255)"),
	colorOverride("info", "info color (ANSI 0-255)"),
	colorOverride("muted", "muted text color (ANSI 0-255)"),
	colorOverride("header", "header style (ANSI 0-255 or 'bold')"),
}

func findKey(name string) (ConfigKey, bool) {
	i := slices.IndexFunc(ConfigKeys, func(k ConfigKey) bool { return k.Name == name })
	if i < 0 {
		return ConfigKey{}, false
	}
	return ConfigKeys[i], true
}

// GetConfigKey looks a key up by name.
func GetConfigKey(name string) (ConfigKey, bool) {
	return findKey(name)
}

func IsValidConfigKey(name string) bool {
	_, ok := findKey(name)
	return ok
}

// GetDefaultValue returns the static default of a key.
func GetDefaultValue(name string) (string, bool) {
	key, ok := findKey(name)
	return key.Default, ok
}

func ConfigKeyNames() []string {
	names := make([]string, len(ConfigKeys))
	for i, key := range ConfigKeys {
		names[i] = key.Name
	}
	return names
}

// ConfigSections lists section names in display order.
func ConfigSections() []string {
	var sections []string
	for _, key := range ConfigKeys {
		if !slices.Contains(sections, key.Section) {
			sections = append(sections, key.Section)
		}
	}
	return sections
}

func ConfigKeysBySection() map[string][]ConfigKey {
	result := make(map[string][]ConfigKey)
	for _, key := range ConfigKeys {
		result[key.Section] = append(result[key.Section], key)
	}
	return result
}
