// Package paths locates the files scopes tools read and write.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName     = "scopes"
	storeDirName   = ".scopes"
	configFileName = ".scopesrc"
)

// AppDataDir returns the directory for the log file, creating it with
// restrictive permissions. It falls back to "." when the user config
// directory is unknown.
//   - macOS: ~/Library/Application Support/scopes
//   - Linux: $XDG_CONFIG_HOME/scopes or ~/.config/scopes
//   - Windows: %AppData%\scopes
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)
	_ = os.MkdirAll(path, 0700)
	return path
}

// AppLocalDataDir returns the machine-local data directory used by the
// sqlite store backend.
//   - macOS: ~/Library/Application Support/scopes
//   - Linux: $XDG_DATA_HOME/scopes or ~/.local/share/scopes
//   - Windows: %LOCALAPPDATA%\scopes
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")
	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}
	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// StoreRoot returns ~/.scopes, the parent of every file-backed store.
func StoreRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return storeDirName
	}
	return filepath.Join(home, storeDirName)
}

// DatabasePath returns the sqlite file shared by database-backed stores.
func DatabasePath() string {
	return filepath.Join(AppLocalDataDir(), "store.db")
}

// ConfigFilePath returns ~/.scopesrc.
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configFileName), nil
}

// LogFilePath returns the path of the optional debug log.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "scopes.log")
}
