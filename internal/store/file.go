package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/footprint-tools/scopes/internal/domain"
	"github.com/footprint-tools/scopes/internal/paths"
)

const dataFileName = "data.json"

// FileBackend keeps each document in <root>/<name>/data.json.
type FileBackend struct {
	root string
}

// NewFileBackend creates a backend rooted at root. Directories are created
// on first save.
func NewFileBackend(root string) *FileBackend {
	return &FileBackend{root: root}
}

// Path returns the data file of the named store.
func (b *FileBackend) Path(name string) string {
	return filepath.Join(b.root, name, dataFileName)
}

// Load reads the data file, returning nil if it does not exist.
func (b *FileBackend) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(b.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Save replaces the data file through a temporary file and rename.
func (b *FileBackend) Save(name string, data []byte) error {
	return paths.WriteAtomic(b.Path(name), data, 0600)
}

// Close is a no-op.
func (b *FileBackend) Close() error {
	return nil
}

var _ domain.DocumentBackend = (*FileBackend)(nil)
