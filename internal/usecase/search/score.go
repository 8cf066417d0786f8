package search

import (
	"sort"
	"strings"

	"github.com/tuxcast/epidex/internal/domain/episode"
)

// Fixed scoring weights: a title hit counts double a tag hit.
const (
	tagWeight   = 50
	titleWeight = 100
)

// ScoredEpisode pairs an episode with its relevance score. It lives only
// for the duration of one search call.
type ScoredEpisode struct {
	Episode episode.Episode
	Score   int
}

// scoreEpisode computes the additive relevance score: tagWeight per tag that
// equals some term or contains some term as a substring, titleWeight per
// distinct term contained in the lower-cased title. Both contributions are
// uncapped.
func scoreEpisode(ep episode.Episode, terms map[string]struct{}) int {
	var score int

	for _, tag := range ep.Tags {
		tagLower := strings.ToLower(tag)
		if _, ok := terms[tagLower]; ok {
			score += tagWeight
			continue
		}
		for term := range terms {
			if strings.Contains(tagLower, term) {
				score += tagWeight
				break
			}
		}
	}

	title := strings.ToLower(ep.Title)
	for term := range terms {
		if strings.Contains(title, term) {
			score += titleWeight
		}
	}

	return score
}

// rank sorts by score descending. Ties break on ascending id so output is
// deterministic; tie order is not part of the contract.
func rank(scored []ScoredEpisode) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Episode.ID < scored[j].Episode.ID
	})
}
