// Package file stores documents as JSON files in a directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/odyssey-erp/registrar/internal/storage"
)

// Backend writes one <name>.json file per document under Dir.
type Backend struct {
	dir string
}

// Open prepares dir, creating it when missing.
func Open(dir string) (*Backend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage/file: create %s: %w", dir, err)
	}
	return &Backend{dir: dir}, nil
}

func (b *Backend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

// Read returns the document contents.
func (b *Backend) Read(_ context.Context, name string) ([]byte, error) {
	raw, err := os.ReadFile(b.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("storage/file: read %s: %w", name, err)
	}
	return raw, nil
}

// Write replaces the document through a temporary file so a crash never
// leaves a half-written document behind.
func (b *Backend) Write(_ context.Context, name string, payload []byte) error {
	tmp, err := os.CreateTemp(b.dir, "."+name+"-*")
	if err != nil {
		return fmt.Errorf("storage/file: write %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("storage/file: write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("storage/file: sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage/file: write %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), b.path(name)); err != nil {
		return fmt.Errorf("storage/file: rename %s: %w", name, err)
	}
	return nil
}

// Close is a no-op.
func (b *Backend) Close() error { return nil }
