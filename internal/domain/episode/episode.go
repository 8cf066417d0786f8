// Package episode defines the catalog record type.
package episode

// Episode is a single catalog record. Date, Duration, and URL are
// pass-through metadata: the search pipeline never inspects them, they are
// only rendered in results.
type Episode struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Duration string   `json:"duration"`
	Tags     []string `json:"tags"`
	URL      string   `json:"url"`
}
