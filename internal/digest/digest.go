package digest

import (
	"sort"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
	"github.com/jobtrackr/jobtrackr/internal/matching"
)

// maxEntries caps the daily digest size.
const maxEntries = 10

// Entry is a denormalized snapshot of one digest position, captured at
// generation time. Entries are stored as-is and never point back at live
// catalog records.
type Entry struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
	MatchScore int    `json:"matchScore"`
	ApplyURL   string `json:"applyUrl"`
}

// Generate builds the top matches for the given preferences: every job is
// scored, zero scores are discarded (zero means no match at all), the rest
// are ordered by descending score with ascending PostedDaysAgo breaking
// ties, and the first ten are snapshotted.
//
// Callers must not invoke Generate without preferences; nil preferences
// yield an empty list.
func Generate(c *catalog.Catalog, prefs *matching.Preferences, scores map[int]int) []Entry {
	if prefs == nil {
		return nil
	}

	var matched []*catalog.Job
	for _, job := range c.Jobs {
		if scores[job.ID] > 0 {
			matched = append(matched, job)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		si, sj := scores[matched[i].ID], scores[matched[j].ID]
		if si != sj {
			return si > sj
		}
		return matched[i].PostedDaysAgo < matched[j].PostedDaysAgo
	})

	if len(matched) > maxEntries {
		matched = matched[:maxEntries]
	}

	entries := make([]Entry, 0, len(matched))
	for _, job := range matched {
		entries = append(entries, Entry{
			ID:         job.ID,
			Title:      job.Title,
			Company:    job.Company,
			Location:   job.Location,
			Experience: job.Experience,
			MatchScore: scores[job.ID],
			ApplyURL:   job.ApplyURL,
		})
	}
	return entries
}
