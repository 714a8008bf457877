package matching

import (
	"testing"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
)

func exampleJob() *catalog.Job {
	return &catalog.Job{
		ID:            1,
		Title:         "Backend Engineer",
		Description:   "Python required",
		Skills:        []string{"Python"},
		Location:      "Remote",
		Mode:          "Remote",
		Experience:    "1-3",
		PostedDaysAgo: 1,
		Source:        "LinkedIn",
	}
}

func examplePrefs() *Preferences {
	return &Preferences{
		RoleKeywords:       []string{"backend"},
		PreferredLocations: []string{"Remote"},
		PreferredModes:     []string{"Remote"},
		ExperienceLevel:    "mid",
		Skills:             []string{"python"},
		MinMatchScore:      40,
	}
}

func TestScoreWorkedExample(t *testing.T) {
	// 25 title + 15 location + 10 mode + 10 experience + 15 skills +
	// 5 fresh + 5 LinkedIn = 85.
	if got := Score(exampleJob(), examplePrefs()); got != 85 {
		t.Fatalf("expected 85, got %d", got)
	}
}

func TestScoreWithoutPreferences(t *testing.T) {
	if got := Score(exampleJob(), nil); got != 0 {
		t.Fatalf("expected 0 without preferences, got %d", got)
	}
}

func TestScoreTitleAndDescriptionMutuallyExclusive(t *testing.T) {
	t.Parallel()

	prefs := &Preferences{RoleKeywords: []string{"backend"}}

	tests := []struct {
		name   string
		job    *catalog.Job
		expect int
	}{
		{
			name:   "keyword in title only",
			job:    &catalog.Job{Title: "Backend Engineer", PostedDaysAgo: 10},
			expect: 25,
		},
		{
			name:   "keyword in description only",
			job:    &catalog.Job{Title: "Engineer", Description: "Backend role", PostedDaysAgo: 10},
			expect: 15,
		},
		{
			name:   "keyword in both never stacks",
			job:    &catalog.Job{Title: "Backend Engineer", Description: "Backend role", PostedDaysAgo: 10},
			expect: 25,
		},
		{
			name:   "keyword in neither",
			job:    &catalog.Job{Title: "Engineer", Description: "Some role", PostedDaysAgo: 10},
			expect: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Score(tt.job, prefs); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestScoreExperienceTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level  string
		tag    string
		expect int
	}{
		{level: "intern", tag: "Fresher", expect: 10},
		{level: "junior", tag: "0-1", expect: 10},
		{level: "mid", tag: "3-5", expect: 10},
		{level: "senior", tag: "3-5", expect: 10},
		{level: "lead", tag: "3-5", expect: 10},
		{level: "senior", tag: "1-3", expect: 0},
		{level: "principal", tag: "3-5", expect: 0},
		{level: "", tag: "Fresher", expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.level+"/"+tt.tag, func(t *testing.T) {
			t.Parallel()
			job := &catalog.Job{Experience: tt.tag, PostedDaysAgo: 10}
			prefs := &Preferences{ExperienceLevel: tt.level}
			if got := Score(job, prefs); got != tt.expect {
				t.Fatalf("expected %d, got %d", tt.expect, got)
			}
		})
	}
}

func TestScoreStaysWithinBounds(t *testing.T) {
	jobs := []*catalog.Job{
		exampleJob(),
		{},
		{Title: "backend backend backend", Description: "backend", Source: "LinkedIn"},
	}
	for _, job := range jobs {
		if got := Score(job, examplePrefs()); got < 0 || got > 100 {
			t.Fatalf("score %d out of [0,100] for job %+v", got, job)
		}
	}
}

func TestScoreSkillBonusNeedsBothSides(t *testing.T) {
	t.Parallel()

	prefs := &Preferences{Skills: []string{"go"}}

	job := &catalog.Job{Skills: nil, PostedDaysAgo: 10}
	if got := Score(job, prefs); got != 0 {
		t.Fatalf("expected no skill bonus for job without skills, got %d", got)
	}

	job = &catalog.Job{Skills: []string{"GO"}, PostedDaysAgo: 10}
	if got := Score(job, prefs); got != 15 {
		t.Fatalf("expected case-insensitive skill match, got %d", got)
	}
}

func TestThresholdDefault(t *testing.T) {
	var prefs *Preferences
	if got := prefs.Threshold(); got != DefaultThreshold {
		t.Fatalf("expected default threshold %d, got %d", DefaultThreshold, got)
	}

	prefs = &Preferences{MinMatchScore: 70}
	if got := prefs.Threshold(); got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
}
