package matching

import (
	"strings"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
)

const maxScore = 100

// experienceTags maps a preference experience level to the set of acceptable
// job experience tags.
var experienceTags = map[string][]string{
	"intern": {"Fresher"},
	"junior": {"Fresher", "0-1"},
	"mid":    {"1-3", "3-5"},
	"senior": {"3-5"},
	"lead":   {"3-5"},
}

// Score computes the relevance score of a job against the user's preferences.
// The result is always within [0, 100]. Nil preferences disable scoring
// entirely and yield 0, with no partial credit.
//
// The score is a sum of independent additive bonuses, clamped at 100. The
// title and description keyword bonuses are mutually exclusive: the
// description is only consulted when no role keyword occurs in the title.
func Score(job *catalog.Job, prefs *Preferences) int {
	if prefs == nil {
		return 0
	}

	score := 0

	title := strings.ToLower(job.Title)
	description := strings.ToLower(job.Description)

	titleHit := false
	for _, kw := range prefs.RoleKeywords {
		if kw == "" {
			continue
		}
		if strings.Contains(title, strings.ToLower(kw)) {
			titleHit = true
			break
		}
	}
	if titleHit {
		score += 25
	} else {
		for _, kw := range prefs.RoleKeywords {
			if kw == "" {
				continue
			}
			if strings.Contains(description, strings.ToLower(kw)) {
				score += 15
				break
			}
		}
	}

	if containsString(prefs.PreferredLocations, job.Location) {
		score += 15
	}

	if containsString(prefs.PreferredModes, job.Mode) {
		score += 10
	}

	if tags, ok := experienceTags[prefs.ExperienceLevel]; ok {
		if containsString(tags, job.Experience) {
			score += 10
		}
	}

	if len(prefs.Skills) > 0 && len(job.Skills) > 0 && skillsOverlap(prefs.Skills, job.Skills) {
		score += 15
	}

	if job.PostedDaysAgo <= 2 {
		score += 5
	}

	if job.Source == "LinkedIn" {
		score += 5
	}

	if score > maxScore {
		score = maxScore
	}

	return score
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}

func skillsOverlap(mine, theirs []string) bool {
	for _, m := range mine {
		for _, t := range theirs {
			if strings.EqualFold(m, t) {
				return true
			}
		}
	}
	return false
}
