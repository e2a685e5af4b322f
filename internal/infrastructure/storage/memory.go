package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps blobs in process memory. It backs tests and the default
// single-process deployment.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string]string
	quota int
}

// NewMemoryStore creates an empty store. quota bounds the size of a single
// blob in bytes; 0 means unbounded.
func NewMemoryStore(quota int) *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string]string),
		quota: quota,
	}
}

func (s *MemoryStore) Read(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	blob, ok := s.blobs[key]
	return blob, ok, nil
}

func (s *MemoryStore) Write(ctx context.Context, key string, blob string) error {
	if err := checkQuota(key, blob, s.quota); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs[key] = blob
	return nil
}
