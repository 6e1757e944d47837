package config

import (
	"strings"

	"github.com/footprint-tools/scopes/internal/paths"
)

// WriteLines atomically replaces the rc file with lines, each terminated
// by a newline.
func WriteLines(lines []string) error {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return paths.WriteAtomic(configPath, []byte(b.String()), 0600)
}
