package matching

import "github.com/jobtrackr/jobtrackr/internal/catalog"

// Rebuild recomputes the score of every catalog job against the given
// preferences. There is no incremental path: any rebuild covers the whole
// catalog, so the result is never partially stale. Consumers treat a missing
// entry as score 0, which also covers the nil-preferences case where the map
// comes back empty.
func Rebuild(c *catalog.Catalog, prefs *Preferences) map[int]int {
	scores := make(map[int]int, c.Len())
	if prefs == nil {
		return scores
	}
	for _, job := range c.Jobs {
		scores[job.ID] = Score(job, prefs)
	}
	return scores
}
