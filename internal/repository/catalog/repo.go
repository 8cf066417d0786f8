// Package catalog loads the episode catalog artifacts produced by the
// indexer: an id→episode JSON object and a tag→ids JSON object. Loading
// happens once at startup; a failure of any kind is fatal to the caller
// because the service must never run on a partial catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tuxcast/epidex/internal/db"
	domcat "github.com/tuxcast/epidex/internal/domain/catalog"
	"github.com/tuxcast/epidex/internal/domain/episode"
)

// Default artifact names, matching what the indexer writes.
const (
	DefaultEpisodesKey = "episodes_by_id_index.json"
	DefaultTagsKey     = "episodes_by_tag_index.json"
)

// Repo reads catalog artifacts from a db.Store.
type Repo struct {
	store       db.Store
	episodesKey string
	tagsKey     string
}

// New creates a catalog repository with the default artifact keys.
func New(store db.Store) *Repo {
	return &Repo{
		store:       store,
		episodesKey: DefaultEpisodesKey,
		tagsKey:     DefaultTagsKey,
	}
}

// WithKeys overrides the artifact keys.
func (r *Repo) WithKeys(episodesKey, tagsKey string) *Repo {
	if episodesKey != "" {
		r.episodesKey = episodesKey
	}
	if tagsKey != "" {
		r.tagsKey = tagsKey
	}
	return r
}

// Load reads and decodes both artifacts and builds a validated catalog.
// The catalog constructor rejects a tag index referencing unknown ids.
func (r *Repo) Load(ctx context.Context) (*domcat.Catalog, error) {
	rawEpisodes, err := r.store.Get(ctx, r.episodesKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.episodesKey, err)
	}
	byID, err := decodeEpisodes(rawEpisodes)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.episodesKey, err)
	}

	rawTags, err := r.store.Get(ctx, r.tagsKey)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.tagsKey, err)
	}
	byTag, err := decodeTagIndex(rawTags)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.tagsKey, err)
	}

	cat, err := domcat.New(byID, byTag)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}

func decodeEpisodes(raw []byte) (map[int64]episode.Episode, error) {
	var dto map[string]episodeDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, err
	}
	return episodesFromDTO(dto)
}

func decodeTagIndex(raw []byte) (map[string][]int64, error) {
	var byTag map[string][]int64
	if err := json.Unmarshal(raw, &byTag); err != nil {
		return nil, err
	}
	return byTag, nil
}
