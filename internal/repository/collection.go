package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"medrep-visits/internal/infrastructure/storage"
)

var (
	// ErrMalformedData is returned when a stored blob does not decode into
	// the expected collection shape. No repair is attempted.
	ErrMalformedData = errors.New("malformed persisted data")

	ErrDuplicateAppointment = errors.New("appointment id already exists")
	ErrInvalidStatus        = errors.New("invalid appointment status")
)

// readCollection loads and decodes the collection stored at key.
// found is false when the key was never written or holds an empty blob.
func readCollection[T any](ctx context.Context, store storage.RecordStore, key string) ([]T, bool, error) {
	blob, found, err := store.Read(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if !found || blob == "" {
		return []T{}, false, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, true, fmt.Errorf("decode %s: %v: %w", key, err, ErrMalformedData)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

// writeCollection replaces the blob at key with the encoded items.
func writeCollection[T any](ctx context.Context, store storage.RecordStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Write(ctx, key, string(blob))
}
