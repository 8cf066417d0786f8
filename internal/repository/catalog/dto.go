package catalog

import (
	"fmt"
	"strconv"

	"github.com/tuxcast/epidex/internal/domain/episode"
)

// episodeDTO mirrors the JSON layout of one entry in the id index. The map
// key is the decimal episode id; the embedded id must agree with it.
type episodeDTO struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Duration string   `json:"duration"`
	Tags     []string `json:"tags"`
	URL      string   `json:"url"`
}

func episodesFromDTO(dto map[string]episodeDTO) (map[int64]episode.Episode, error) {
	byID := make(map[int64]episode.Episode, len(dto))
	for key, e := range dto {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("non-numeric episode key %q", key)
		}
		if e.ID != 0 && e.ID != id {
			return nil, fmt.Errorf("episode key %q disagrees with embedded id %d", key, e.ID)
		}
		byID[id] = episode.Episode{
			ID:       id,
			Title:    e.Title,
			Date:     e.Date,
			Duration: e.Duration,
			Tags:     e.Tags,
			URL:      e.URL,
		}
	}
	return byID, nil
}
