package search

import (
	"testing"

	"github.com/tuxcast/epidex/internal/domain/episode"
)

func TestScoreEpisode_Weights(t *testing.T) {
	ep := episode.Episode{
		ID:    1,
		Title: "Wire Shark Basics",
		Tags:  []string{"networking", "security"},
	}

	// "wire" hits the title only: 100.
	if got := scoreEpisode(ep, termSet("wire")); got != 100 {
		t.Errorf("title-only score = %d, want 100", got)
	}

	// "networking" hits one tag by equality: 50.
	if got := scoreEpisode(ep, termSet("networking")); got != 50 {
		t.Errorf("tag-equality score = %d, want 50", got)
	}

	// "net" hits one tag by substring: 50.
	if got := scoreEpisode(ep, termSet("net")); got != 50 {
		t.Errorf("tag-substring score = %d, want 50", got)
	}

	// "wire" (title) + "networking" (tag): 150.
	if got := scoreEpisode(ep, termSet("wire", "networking")); got != 150 {
		t.Errorf("combined score = %d, want 150", got)
	}
}

func TestScoreEpisode_TagMonotonicity(t *testing.T) {
	terms := termSet("networking")

	before := episode.Episode{ID: 1, Title: "Show", Tags: []string{"networking"}}
	after := episode.Episode{ID: 1, Title: "Show", Tags: []string{"networking", "networking-extras"}}

	delta := scoreEpisode(after, terms) - scoreEpisode(before, terms)
	if delta != tagWeight {
		t.Errorf("adding a matching tag changed the score by %d, want %d", delta, tagWeight)
	}
}

func TestScoreEpisode_DistinctTitleTerms(t *testing.T) {
	ep := episode.Episode{ID: 1, Title: "Wire Shark Basics"}

	// Two distinct terms in the title: 200. The term set has already been
	// deduplicated, so a repeated query word cannot double-count.
	if got := scoreEpisode(ep, termSet("wire", "shark")); got != 200 {
		t.Errorf("two distinct title terms = %d, want 200", got)
	}
}

func TestScoreEpisode_Uncapped(t *testing.T) {
	ep := episode.Episode{
		ID:    1,
		Title: "Linux Linux Linux",
		Tags:  []string{"linux", "linux-kernel", "linux-desktop"},
	}

	// Three tag hits plus one title hit: 3*50 + 100.
	if got := scoreEpisode(ep, termSet("linux")); got != 250 {
		t.Errorf("accumulated score = %d, want 250", got)
	}
}

func TestScoreEpisode_NoHits(t *testing.T) {
	ep := episode.Episode{ID: 1, Title: "Cooking Show", Tags: []string{"food"}}
	if got := scoreEpisode(ep, termSet("kernel")); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestRank_Descending(t *testing.T) {
	scored := []ScoredEpisode{
		{Episode: episode.Episode{ID: 1}, Score: 50},
		{Episode: episode.Episode{ID: 2}, Score: 250},
		{Episode: episode.Episode{ID: 3}, Score: 100},
	}

	rank(scored)

	for i := 1; i < len(scored); i++ {
		if scored[i-1].Score < scored[i].Score {
			t.Fatalf("rank order broken at %d: %v", i, scored)
		}
	}
	if scored[0].Episode.ID != 2 {
		t.Errorf("highest-scored episode should rank first, got id %d", scored[0].Episode.ID)
	}
}
