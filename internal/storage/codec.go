package storage

import (
	"encoding/json"
	"fmt"

	"github.com/odyssey-erp/registrar/internal/book"
)

const documentVersion = 1

type document[T book.Record] struct {
	Version int `json:"version"`
	Records []T `json:"records"`
}

func encodeStore[T book.Record](store *book.Store[T]) ([]byte, error) {
	records := store.List()
	if records == nil {
		records = []T{}
	}
	raw, err := json.MarshalIndent(document[T]{Version: documentVersion, Records: records}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("storage: encode %s: %w", store.Kind(), err)
	}
	return raw, nil
}

// decodeStore fills store from raw. Invalid or duplicate records reject the
// whole document.
func decodeStore[T book.Record](raw []byte, store *book.Store[T]) error {
	var doc document[T]
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("storage: decode %s: %w", store.Kind(), err)
	}
	if doc.Version != documentVersion {
		return fmt.Errorf("storage: %s document version %d is not supported", store.Kind(), doc.Version)
	}
	for i, r := range doc.Records {
		if err := book.Validate(r); err != nil {
			return fmt.Errorf("storage: %s record %d: %w", store.Kind(), i+1, err)
		}
		if err := store.Add(r); err != nil {
			return fmt.Errorf("storage: %s record %d: %w", store.Kind(), i+1, err)
		}
	}
	return nil
}
