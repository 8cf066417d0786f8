package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tuxcast/epidex/internal/domain"
	"github.com/tuxcast/epidex/internal/domain/catalog"
	"github.com/tuxcast/epidex/internal/domain/episode"
)

// matchCandidates finds every episode matching any term on any criterion:
// tag containment (both directions), title substring, or exact decimal id.
// Union semantics — a single matching term includes the episode. An empty
// term set matches nothing.
func matchCandidates(cat *catalog.Catalog, terms map[string]struct{}) (map[int64]episode.Episode, error) {
	found := make(map[int64]episode.Episode)
	if len(terms) == 0 {
		return found, nil
	}

	for tag, ids := range cat.TagIndex() {
		if !tagMatchesAny(strings.ToLower(tag), terms) {
			continue
		}
		for _, id := range ids {
			ep, ok := cat.Episode(id)
			if !ok {
				// The catalog constructor validates the index, so this only
				// fires on a corrupted catalog. Report it, never skip it.
				return nil, fmt.Errorf("%w: tag %q references unknown episode %d", domain.ErrInconsistentIndex, tag, id)
			}
			found[id] = ep
		}
	}

	for id, ep := range cat.Episodes() {
		if _, seen := found[id]; seen {
			continue
		}
		if _, ok := terms[strconv.FormatInt(id, 10)]; ok {
			found[id] = ep
			continue
		}
		title := strings.ToLower(ep.Title)
		for term := range terms {
			if strings.Contains(title, term) {
				found[id] = ep
				break
			}
		}
	}

	return found, nil
}

// tagMatchesAny applies the bidirectional containment rule: the term may be
// a substring of the tag or the tag a substring of the term. Deliberately
// kept both ways for compatibility with the existing result sets.
func tagMatchesAny(tag string, terms map[string]struct{}) bool {
	for term := range terms {
		if strings.Contains(tag, term) || strings.Contains(term, tag) {
			return true
		}
	}
	return false
}

// dropExcluded removes candidates having at least one tag containing any
// exclude term. Exclusion inspects tags only, never title or id. An empty
// exclude list leaves candidates untouched.
func dropExcluded(candidates map[int64]episode.Episode, exclude []string) {
	if len(exclude) == 0 {
		return
	}
	for id, ep := range candidates {
		if anyTagContains(ep.Tags, exclude) {
			delete(candidates, id)
		}
	}
}

func anyTagContains(tags, exclude []string) bool {
	for _, tag := range tags {
		tagLower := strings.ToLower(tag)
		for _, ex := range exclude {
			if strings.Contains(tagLower, ex) {
				return true
			}
		}
	}
	return false
}
