// Package style renders text by semantic role (success, warning, error,
// info, muted, header) with lipgloss. Disabled styling returns text as is.
package style

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Role is what a piece of text means, not how it looks.
type Role int

const (
	RoleSuccess Role = iota
	RoleWarning
	RoleError
	RoleInfo
	RoleMuted
	RoleHeader
	roleCount
)

type palette struct {
	enabled bool
	colors  ColorConfig
	styles  [roleCount]lipgloss.Style
}

var current atomic.Pointer[palette]

func init() {
	current.Store(&palette{})
}

// Init enables or disables styling and loads colors from cfg (a nil cfg
// uses the default theme). NO_COLOR or SCOPES_NO_COLOR turn styling off
// whatever enable says.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("SCOPES_NO_COLOR") != "" {
		enable = false
	}
	if !enable {
		current.Store(&palette{})
		return
	}

	lipgloss.SetColorProfile(termenv.ANSI256)

	p := &palette{enabled: true, colors: LoadColorConfig(cfg)}
	for r := range roleCount {
		p.styles[r] = styleFor(p.colors.Get(r))
	}
	current.Store(p)
}

// styleFor turns a color value into a bold style. "bold" means no color.
func styleFor(value string) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if value == "bold" || value == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(value))
}

// Enabled reports whether Init turned styling on.
func Enabled() bool {
	return current.Load().enabled
}

// GetColors returns the loaded colors, or an empty config when disabled.
func GetColors() ColorConfig {
	return current.Load().colors
}

// Profile is the color profile styled output is written with.
func Profile() termenv.Profile {
	if Enabled() {
		return termenv.ANSI256
	}
	return termenv.Ascii
}

// Render styles text for role.
func Render(role Role, text string) string {
	p := current.Load()
	if !p.enabled || role < 0 || role >= roleCount {
		return text
	}
	return p.styles[role].Render(text)
}

func Success(text string) string { return Render(RoleSuccess, text) }
func Warning(text string) string { return Render(RoleWarning, text) }
func Error(text string) string   { return Render(RoleError, text) }
func Info(text string) string    { return Render(RoleInfo, text) }
func Muted(text string) string   { return Render(RoleMuted, text) }
func Header(text string) string  { return Render(RoleHeader, text) }
