package storage

import (
	"context"
	"errors"
	"fmt"
)

// Collection keys
const (
	DoctorsKey      = "doctors"
	AppointmentsKey = "appointments"
)

var (
	// ErrUnavailable is returned by every call when no persistent store is
	// reachable. Callers degrade to empty or default collections.
	ErrUnavailable = errors.New("record store unavailable")

	// ErrQuotaExceeded is returned when a write is rejected for size.
	ErrQuotaExceeded = errors.New("record store quota exceeded")
)

// RecordStore persists whole collections as text blobs under named keys.
// A write replaces the blob at a key in a single operation, so readers see
// either the old or the new blob.
type RecordStore interface {
	// Read returns the blob stored at key. found is false when the key was
	// never written.
	Read(ctx context.Context, key string) (blob string, found bool, err error)

	// Write replaces the blob at key.
	Write(ctx context.Context, key string, blob string) error
}

// checkQuota rejects blobs larger than quota bytes. A quota of 0 disables the check.
func checkQuota(key, blob string, quota int) error {
	if quota > 0 && len(blob) > quota {
		return fmt.Errorf("write %s: %d bytes exceeds %d: %w", key, len(blob), quota, ErrQuotaExceeded)
	}
	return nil
}
