// Package bolt stores documents in a single bbolt database file.
package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/odyssey-erp/registrar/internal/storage"
)

var bucket = []byte("documents")

// Backend keeps every document as a key of one bucket.
type Backend struct {
	db *bbolt.DB
}

// Open opens or creates the database at path. It gives up after timeout when
// another process holds the file lock.
func Open(path string, timeout time.Duration) (*Backend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage/bolt: create dir: %w", err)
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("storage/bolt: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage/bolt: create bucket: %w", err)
	}
	return &Backend{db: db}, nil
}

// Read returns a copy of the stored document.
func (b *Backend) Read(_ context.Context, name string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucket).Get([]byte(name))
		if v == nil {
			return storage.ErrNotExist
		}
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Write stores the document in its own transaction.
func (b *Backend) Write(_ context.Context, name string, payload []byte) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(name), payload)
	})
	if err != nil {
		return fmt.Errorf("storage/bolt: put %s: %w", name, err)
	}
	return nil
}

// Close releases the file lock.
func (b *Backend) Close() error {
	return b.db.Close()
}
