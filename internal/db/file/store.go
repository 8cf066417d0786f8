// Package file implements db.Store over a local directory. Keys are file
// names relative to the configured directory; this is the default driver
// and matches the layout the indexer writes to disk.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tuxcast/epidex/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Store reads artifacts from a directory.
type Store struct {
	dir string
}

// NewStore creates a file store rooted at dir.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &Store{dir: dir}, nil
}

// Get reads the file stored under key. Keys must not escape the root
// directory.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	clean := filepath.Clean(key)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return nil, &db.Error{Op: "READ", Err: fmt.Errorf("key %q escapes store root", key)}
	}

	data, err := os.ReadFile(filepath.Join(s.dir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, db.ErrKeyNotFound
		}
		return nil, &db.Error{Op: "READ", Err: err}
	}
	return data, nil
}

// Ping checks the root directory still exists.
func (s *Store) Ping(_ context.Context) error {
	if _, err := os.Stat(s.dir); err != nil {
		return fmt.Errorf("stat %s: %w", s.dir, err)
	}
	return nil
}

// WaitForReady is immediate for the filesystem: a single Ping decides.
func (s *Store) WaitForReady(ctx context.Context, _ time.Duration) error {
	return s.Ping(ctx)
}

// Close is a no-op for the filesystem.
func (s *Store) Close() {}
