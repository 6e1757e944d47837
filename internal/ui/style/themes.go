package style

import (
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds one color per role: an ANSI number (0-255) or "bold".
type ColorConfig struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

func (c *ColorConfig) field(r Role) *string {
	switch r {
	case RoleSuccess:
		return &c.Success
	case RoleWarning:
		return &c.Warning
	case RoleError:
		return &c.Error
	case RoleInfo:
		return &c.Info
	case RoleMuted:
		return &c.Muted
	case RoleHeader:
		return &c.Header
	}
	return nil
}

// Get returns the color for r.
func (c ColorConfig) Get(r Role) string {
	if f := c.field(r); f != nil {
		return *f
	}
	return ""
}

// Set replaces the color for r.
func (c *ColorConfig) Set(r Role, value string) {
	if f := c.field(r); f != nil {
		*f = value
	}
}

type theme struct {
	dark, light ColorConfig
}

var themes = map[string]theme{
	"default": {
		dark:  ColorConfig{Success: "10", Warning: "11", Error: "9", Info: "12", Muted: "245", Header: "14"},
		light: ColorConfig{Success: "28", Warning: "130", Error: "124", Info: "27", Muted: "243", Header: "25"},
	},
	"meadow": {
		dark:  ColorConfig{Success: "114", Warning: "179", Error: "167", Info: "108", Muted: "244", Header: "bold"},
		light: ColorConfig{Success: "64", Warning: "136", Error: "160", Info: "66", Muted: "242", Header: "bold"},
	},
	"mono": {
		dark:  ColorConfig{Success: "50", Warning: "229", Error: "210", Info: "50", Muted: "245", Header: "bold"},
		light: ColorConfig{Success: "30", Warning: "136", Error: "124", Info: "30", Muted: "244", Header: "bold"},
	},
	"ocean": {
		dark:  ColorConfig{Success: "43", Warning: "221", Error: "174", Info: "75", Muted: "245", Header: "bold"},
		light: ColorConfig{Success: "30", Warning: "130", Error: "124", Info: "25", Muted: "244", Header: "bold"},
	},
}

// BaseThemeNames are the themes that pick a variant from the terminal
// background.
var BaseThemeNames = slices.Sorted(maps.Keys(themes))

// Themes holds every "<base>-dark" and "<base>-light" variant.
var Themes = func() map[string]ColorConfig {
	out := make(map[string]ColorConfig, 2*len(themes))
	for name, t := range themes {
		out[name+"-dark"] = t.dark
		out[name+"-light"] = t.light
	}
	return out
}()

// roleKeys maps config keys to the role they color. The environment
// override of key k is SCOPES_ + upper(k).
var roleKeys = map[string]Role{
	"color_success": RoleSuccess,
	"color_warning": RoleWarning,
	"color_error":   RoleError,
	"color_info":    RoleInfo,
	"color_muted":   RoleMuted,
	"color_header":  RoleHeader,
}

// backgroundIsDark is swapped out in tests.
var backgroundIsDark = termenv.HasDarkBackground

// ResolveThemeName adds a -dark or -light suffix to a base name according
// to the terminal background. Names that already carry one are returned
// unchanged.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if backgroundIsDark() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig picks the theme named by SCOPES_THEME or cfg["theme"]
// (falling back to default-dark for unknown names), then applies per-role
// overrides from SCOPES_COLOR_* and cfg["color_*"], environment first.
func LoadColorConfig(cfg map[string]string) ColorConfig {
	name := cfg["theme"]
	if env := os.Getenv("SCOPES_THEME"); env != "" {
		name = env
	}
	if name == "" {
		name = "default"
	}

	colors, ok := Themes[ResolveThemeName(name)]
	if !ok {
		colors = Themes["default-dark"]
	}

	for key, role := range roleKeys {
		if v := os.Getenv("SCOPES_" + strings.ToUpper(key)); v != "" {
			colors.Set(role, v)
		} else if v := cfg[key]; v != "" {
			colors.Set(role, v)
		}
	}
	return colors
}
