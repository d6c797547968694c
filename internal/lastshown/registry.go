// Package lastshown remembers the most recently displayed sequence of each
// record kind so that "index N" arguments can be resolved against it.
package lastshown

import (
	"errors"
	"fmt"
	"slices"

	"github.com/odyssey-erp/registrar/internal/book"
)

// Offset converts a user-facing index to a slice position.
const Offset = 1

// ErrIndexOutOfRange indicates an index outside the displayed sequence.
var ErrIndexOutOfRange = errors.New("lastshown: index out of range")

// IndexError names the kind and index that failed to resolve.
type IndexError struct {
	Kind  book.Kind
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("lastshown: %s index %d outside 1..%d", e.Kind, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Registry holds one independent sequence per kind. It is owned by the
// executor and is not safe for concurrent use.
type Registry struct {
	lists map[book.Kind][]book.Record
}

// New returns a registry with every sequence empty.
func New() *Registry {
	return &Registry{lists: make(map[book.Kind][]book.Record, len(book.Kinds()))}
}

// Replace swaps the sequence for kind wholesale. The slice is copied so the
// caller may reuse it.
func (r *Registry) Replace(kind book.Kind, records []book.Record) {
	r.lists[kind] = slices.Clone(records)
}

// Resolve returns the record displayed at the 1-based index for kind.
func (r *Registry) Resolve(kind book.Kind, index int) (book.Record, error) {
	list := r.lists[kind]
	pos := index - Offset
	if pos < 0 || pos >= len(list) {
		return nil, &IndexError{Kind: kind, Index: index, Len: len(list)}
	}
	return list[pos], nil
}

// Len reports how many records of kind were last displayed.
func (r *Registry) Len(kind book.Kind) int {
	return len(r.lists[kind])
}

// ResolveMutable resolves index against the store's kind and returns the
// live record from the store. A displayed record that has since left the
// store surfaces as the store's NotFound error.
func ResolveMutable[T book.Record](r *Registry, store *book.Store[T], index int) (*T, error) {
	rec, err := r.Resolve(store.Kind(), index)
	if err != nil {
		return nil, err
	}
	return store.Find(rec.Key())
}
