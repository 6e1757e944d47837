package style

import "github.com/footprint-tools/scopes/internal/domain"

var (
	_ domain.Styler = Styler{}
	_ domain.Styler = NopStyler{}
)

// Styler is the domain.Styler backed by whatever Init configured.
type Styler struct{}

// NewStyler returns a Styler.
func NewStyler() Styler {
	return Styler{}
}

func (Styler) Enabled() bool               { return Enabled() }
func (Styler) Success(text string) string { return Render(RoleSuccess, text) }
func (Styler) Warning(text string) string { return Render(RoleWarning, text) }
func (Styler) Error(text string) string   { return Render(RoleError, text) }
func (Styler) Info(text string) string    { return Render(RoleInfo, text) }
func (Styler) Muted(text string) string   { return Render(RoleMuted, text) }
func (Styler) Header(text string) string  { return Render(RoleHeader, text) }

// NopStyler leaves text untouched. Tests embed it to override single roles.
type NopStyler struct{}

func (NopStyler) Enabled() bool               { return false }
func (NopStyler) Success(text string) string { return text }
func (NopStyler) Warning(text string) string { return text }
func (NopStyler) Error(text string) string   { return text }
func (NopStyler) Info(text string) string    { return text }
func (NopStyler) Muted(text string) string   { return text }
func (NopStyler) Header(text string) string  { return text }
