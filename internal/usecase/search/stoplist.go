package search

import "strings"

// Stoplist is a fixed set of common words removed from term sets before
// matching. It is built once at startup and passed into the search service;
// there is no process-global instance.
type Stoplist map[string]struct{}

// NewStoplist builds a stoplist from a word list. Words are lower-cased and
// trimmed; empties are skipped.
func NewStoplist(words []string) Stoplist {
	s := make(Stoplist, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// DefaultStoplist returns the built-in list of common English function words.
func DefaultStoplist() Stoplist { return NewStoplist(defaultStopWords) }

// Filter lower-cases terms, drops stoplisted ones, and collects the rest
// into a set. Filtering an already-filtered set changes nothing.
func (s Stoplist) Filter(terms []string) map[string]struct{} {
	out := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(t)
		if _, stop := s[t]; stop {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

var defaultStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "did", "do",
	"does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "itself", "just", "me", "more", "most", "my", "myself",
	"no", "nor", "not", "now", "of", "off", "on", "once", "only", "or",
	"other", "our", "ours", "out", "over", "own", "same", "she", "should",
	"so", "some", "such", "than", "that", "the", "their", "theirs", "them",
	"then", "there", "these", "they", "this", "those", "through", "to",
	"too", "under", "until", "up", "very", "was", "we", "were", "what",
	"when", "where", "which", "while", "who", "whom", "why", "will", "with",
	"you", "your", "yours",
}
