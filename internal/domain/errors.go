package domain

import "errors"

var (
	// ErrInconsistentIndex signals a tag index entry referencing an episode id
	// absent from the id map. The catalog artifacts are built outside this
	// service, so this means they are corrupted; it is fatal, never skipped.
	ErrInconsistentIndex = errors.New("inconsistent tag index")
	// ErrCatalogEmpty signals a catalog with no episodes.
	ErrCatalogEmpty = errors.New("catalog is empty")
)
