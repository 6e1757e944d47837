package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/footprint-tools/scopes/internal/config"
	"github.com/footprint-tools/scopes/internal/domain"
)

var validate = validator.New()

// Options configures New. DefaultOptions reads them from ~/.scopesrc and
// the environment.
type Options struct {
	// Name of the tool's store.
	Name string `validate:"required,excludesall=/\\"`

	StoreBackend string `validate:"oneof=file sqlite"`
	StoreDir     string

	LogEnabled bool
	LogLevel   string `validate:"oneof=debug info warn error"`

	PagerDisabled bool

	StyleEnabled bool
	StyleConfig  map[string]string

	// Warnings describe settings DefaultOptions replaced with defaults.
	Warnings []string `validate:"-"`
}

// DefaultOptions builds Options for the tool called name.
// SCOPES_LOG_LEVEL overrides log_level; NO_COLOR or a non-terminal stdout
// disables styling. A log_level or store_backend outside its allowed values
// falls back to the key's default and adds a warning, so a bad rc file never
// stops the tool from starting.
func DefaultOptions(name string) Options {
	cfg, _ := config.GetAll()
	opts := Options{
		Name:         name,
		StoreDir:     cfg["store_dir"],
		LogEnabled:   cfg["enable_log"] == "true",
		StyleEnabled: os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd())),
		StyleConfig:  cfg,
	}

	level, source := cfg["log_level"], "log_level"
	if env := os.Getenv("SCOPES_LOG_LEVEL"); env != "" {
		level, source = env, "SCOPES_LOG_LEVEL"
	}
	opts.LogLevel = opts.allowed("log_level", source, strings.ToLower(level))
	opts.StoreBackend = opts.allowed("store_backend", "store_backend", cfg["store_backend"])

	return opts
}

// allowed returns value, or the default of key when key does not accept it.
func (o *Options) allowed(key, source, value string) string {
	k, _ := domain.GetConfigKey(key)
	if value == "" {
		return k.Default
	}
	if k.Allows(value) {
		return value
	}
	o.Warnings = append(o.Warnings, fmt.Sprintf("%s=%q is not one of %s, using %s",
		source, value, strings.Join(k.Allowed, ", "), k.Default))
	return k.Default
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
