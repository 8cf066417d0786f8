// Package db abstracts the backing store the catalog artifacts are read
// from. Drivers exist for the local filesystem and for Redis; both are
// read-only from the service's point of view.
package db

import (
	"context"
	"errors"
	"time"
)

// Store reads named catalog artifacts.
type Store interface {
	// Get returns the raw bytes stored under key.
	Get(ctx context.Context, key string) ([]byte, error)
	// Ping checks the store is reachable.
	Ping(ctx context.Context) error
	// WaitForReady blocks until the store responds or the timeout expires.
	WaitForReady(ctx context.Context, timeout time.Duration) error
	// Close releases the store's resources.
	Close()
}

// ErrKeyNotFound signals a missing artifact.
var ErrKeyNotFound = errors.New("db: key not found")

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
