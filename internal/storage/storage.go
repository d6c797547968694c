// Package storage persists the record stores and preferences as named
// documents on a pluggable backend.
package storage

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Backend.Read when no document has the name.
var ErrNotExist = errors.New("storage: document does not exist")

// Backend reads and writes whole documents by name.
type Backend interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, payload []byte) error
	Close() error
}
