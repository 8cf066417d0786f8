// Package search implements query parsing and the matching, scoring, and
// ranking pipeline over the episode catalog.
package search

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tuxcast/epidex/internal/domain/catalog"
	"github.com/tuxcast/epidex/internal/domain/episode"
	logpkg "github.com/tuxcast/epidex/internal/logger"
)

// Service runs searches against an immutable catalog with an injected
// stoplist. Every search is a pure function of (query, catalog, stoplist),
// so a single Service is safe for arbitrary concurrent use.
type Service struct {
	catalog  *catalog.Catalog
	stoplist Stoplist
}

// New creates a search service.
func New(cat *catalog.Catalog, stoplist Stoplist) *Service {
	return &Service{catalog: cat, stoplist: stoplist}
}

// Search parses the query, matches the catalog, filters exclusions, and
// returns episodes ordered by relevance (highest score first). A query
// matching nothing yields an empty result, not an error; the only error is
// a corrupted catalog index.
func (s *Service) Search(ctx context.Context, query string) ([]episode.Episode, error) {
	parsed := ParseQuery(query)
	terms := s.stoplist.Filter(parsed.Terms)

	exclude := make([]string, len(parsed.Exclude))
	for i, ex := range parsed.Exclude {
		exclude[i] = strings.ToLower(ex)
	}

	candidates, err := matchCandidates(s.catalog, terms)
	if err != nil {
		return nil, err
	}
	dropExcluded(candidates, exclude)

	scored := make([]ScoredEpisode, 0, len(candidates))
	for _, ep := range candidates {
		scored = append(scored, ScoredEpisode{Episode: ep, Score: scoreEpisode(ep, terms)})
	}
	rank(scored)

	log := logpkg.FromContext(ctx)
	log.Debug("search executed",
		zap.String("query", query),
		zap.Int("terms", len(terms)),
		zap.Int("exclude", len(exclude)),
		zap.Int("results", len(scored)),
	)
	if log.Core().Enabled(zap.DebugLevel) {
		for _, se := range scored {
			log.Debug("search result",
				zap.Int64("id", se.Episode.ID),
				zap.Int("score", se.Score),
				zap.String("title", se.Episode.Title),
			)
		}
	}

	results := make([]episode.Episode, len(scored))
	for i, se := range scored {
		results[i] = se.Episode
	}
	return results, nil
}
