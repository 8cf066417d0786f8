// Package catalog holds the immutable in-memory episode catalog: the
// id→episode map and the tag→ids secondary index.
package catalog

import (
	"fmt"

	"github.com/tuxcast/epidex/internal/domain"
	"github.com/tuxcast/epidex/internal/domain/episode"
)

// Catalog is built once at startup and read-only afterwards, so any number
// of searches may walk it concurrently without coordination.
type Catalog struct {
	byID  map[int64]episode.Episode
	byTag map[string][]int64
}

// New validates the tag index against the id map and builds a catalog.
// Every id the index references must resolve; a dangling id returns
// domain.ErrInconsistentIndex and no catalog.
func New(byID map[int64]episode.Episode, byTag map[string][]int64) (*Catalog, error) {
	if len(byID) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	for tag, ids := range byTag {
		for _, id := range ids {
			if _, ok := byID[id]; !ok {
				return nil, fmt.Errorf("%w: tag %q references unknown episode %d", domain.ErrInconsistentIndex, tag, id)
			}
		}
	}
	return &Catalog{byID: byID, byTag: byTag}, nil
}

// Episode looks up an episode by id.
func (c *Catalog) Episode(id int64) (episode.Episode, bool) {
	ep, ok := c.byID[id]
	return ep, ok
}

// Episodes returns the id→episode map. Callers must treat it as read-only.
func (c *Catalog) Episodes() map[int64]episode.Episode { return c.byID }

// TagIndex returns the tag→ids index. Callers must treat it as read-only.
func (c *Catalog) TagIndex() map[string][]int64 { return c.byTag }

// Len reports the number of episodes.
func (c *Catalog) Len() int { return len(c.byID) }

// TagCount reports the number of distinct tags in the index.
func (c *Catalog) TagCount() int { return len(c.byTag) }
