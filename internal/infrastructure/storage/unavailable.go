package storage

import "context"

// UnavailableStore is the record store of an execution context without
// persistent storage. Every call reports ErrUnavailable so callers can take
// their degraded path explicitly.
type UnavailableStore struct{}

func NewUnavailableStore() UnavailableStore {
	return UnavailableStore{}
}

func (UnavailableStore) Read(ctx context.Context, key string) (string, bool, error) {
	return "", false, ErrUnavailable
}

func (UnavailableStore) Write(ctx context.Context, key string, blob string) error {
	return ErrUnavailable
}
