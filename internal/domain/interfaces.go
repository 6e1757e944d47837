// Package domain holds the interfaces shared between the framework and the
// tools built on it, plus the rc file key registry.
package domain

import "io"

// ConfigProvider reads and edits the rc file.
type ConfigProvider interface {
	Get(key string) (string, bool)
	GetAll() (map[string]string, error)
	Set(key, value string) error
	Unset(key string) error
}

// Logger is a leveled printf-style logger. Implementations must be safe for
// concurrent use.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	Close() error
}

// OutputWriter is where help and other long output goes.
type OutputWriter interface {
	io.Writer
	Printf(format string, args ...any) (int, error)
	Println(args ...any) (int, error)

	// Pager shows content through a pager when writing to a terminal and
	// prints it directly otherwise.
	Pager(content string)
}

// Styler renders text by semantic role. A disabled Styler returns text
// unchanged.
type Styler interface {
	Enabled() bool
	Success(text string) string
	Warning(text string) string
	Error(text string) string
	Info(text string) string
	Muted(text string) string
	Header(text string) string
}

// DocumentBackend persists one JSON document per store name.
type DocumentBackend interface {
	// Load returns the stored document, or nil if none exists yet.
	Load(name string) ([]byte, error)
	// Save replaces the stored document.
	Save(name string, data []byte) error
	Close() error
}
