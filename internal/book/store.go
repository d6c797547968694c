package book

// Store keeps records of one kind in insertion order, unique by natural key.
// It is not safe for concurrent use; callers serialize access.
type Store[T Record] struct {
	kind  Kind
	items []*T
}

// NewStore constructs an empty store for kind.
func NewStore[T Record](kind Kind) *Store[T] {
	return &Store[T]{kind: kind}
}

// Kind reports the kind of records held.
func (s *Store[T]) Kind() Kind { return s.kind }

// Len reports the number of records.
func (s *Store[T]) Len() int { return len(s.items) }

// Contains reports whether a record with key exists.
func (s *Store[T]) Contains(key string) bool {
	return s.indexOf(key) >= 0
}

// Add appends r unless a record with the same key already exists.
func (s *Store[T]) Add(r T) error {
	key := r.Key()
	if s.Contains(key) {
		return &DuplicateError{Kind: s.kind, Key: key}
	}
	item := r
	s.items = append(s.items, &item)
	return nil
}

// Find returns the live record for key. Mutations through the pointer are
// visible to later List calls but do not re-check key uniqueness; use
// Replace when the key may change.
func (s *Store[T]) Find(key string) (*T, error) {
	idx := s.indexOf(key)
	if idx < 0 {
		return nil, &NotFoundError{Kind: s.kind, Key: key}
	}
	return s.items[idx], nil
}

// Remove deletes the record for key.
func (s *Store[T]) Remove(key string) error {
	idx := s.indexOf(key)
	if idx < 0 {
		return &NotFoundError{Kind: s.kind, Key: key}
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	return nil
}

// Replace swaps the record stored under oldKey for r, keeping its position.
func (s *Store[T]) Replace(oldKey string, r T) error {
	idx := s.indexOf(oldKey)
	if idx < 0 {
		return &NotFoundError{Kind: s.kind, Key: oldKey}
	}
	newKey := r.Key()
	if newKey != oldKey && s.Contains(newKey) {
		return &DuplicateError{Kind: s.kind, Key: newKey}
	}
	item := r
	s.items[idx] = &item
	return nil
}

// List returns copies of every record in insertion order.
func (s *Store[T]) List() []T {
	out := make([]T, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, *item)
	}
	return out
}

// Filter returns copies of the records matching keep.
func (s *Store[T]) Filter(keep func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range s.items {
		if keep(*item) {
			out = append(out, *item)
		}
	}
	return out
}

// Records returns the store contents as Record values for list registration.
func (s *Store[T]) Records() []Record {
	return AsRecords(s.List())
}

// Clear removes every record.
func (s *Store[T]) Clear() {
	s.items = nil
}

func (s *Store[T]) indexOf(key string) int {
	for i, item := range s.items {
		if (*item).Key() == key {
			return i
		}
	}
	return -1
}

// AsRecords widens a typed slice to Records.
func AsRecords[T Record](items []T) []Record {
	out := make([]Record, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
