package config

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/paths"
)

// ReadLines returns the raw lines of the rc file. A missing file is
// created holding the documented defaults.
func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	file, err := os.Open(configPath)
	if errors.Is(err, fs.ErrNotExist) {
		lines := initializeDefaults()
		return lines, WriteLines(lines)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	_ = os.Chmod(configPath, 0600)

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// initializeDefaults renders every key with its default value. Optional
// overrides are written commented out.
func initializeDefaults() []string {
	lines := []string{
		"# scopes configuration",
		"# Edit values below or use: <tool> config set <key> <value>",
	}

	section := ""
	for _, key := range domain.ConfigKeys {
		if key.Section != section {
			section = key.Section
			lines = append(lines, "", "# "+section)
		}

		if key.HideIfEmpty {
			lines = append(lines, "# "+key.Name+"=")
			continue
		}
		lines = append(lines, key.Name+"="+formatValue(defaultValue(key.Name)))
	}

	return lines
}
