package config

import (
	"fmt"

	"github.com/footprint-tools/scopes/internal/domain"
)

// Provider implements domain.ConfigProvider on the rc file. Writes hold
// the config lock and reject unknown keys.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set sets a configuration value.
func (p *Provider) Set(key, value string) error {
	return p.edit(key, func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes a configuration value.
func (p *Provider) Unset(key string) error {
	return p.edit(key, func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

func (p *Provider) edit(key string, fn func([]string) []string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("config: unknown key %q", key)
	}

	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		return WriteLines(fn(lines))
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
