package filtering

import (
	"path/filepath"
	"testing"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
	"github.com/jobtrackr/jobtrackr/internal/matching"
	"github.com/jobtrackr/jobtrackr/internal/store"
)

func pipelineFixture() []*catalog.Job {
	return []*catalog.Job{
		{ID: 1, Title: "Backend Engineer", Company: "Acme", Location: "Bengaluru", Mode: "Remote", Experience: "1-3", Source: "LinkedIn"},
		{ID: 2, Title: "Frontend Engineer", Company: "Globex", Location: "Pune", Mode: "Onsite", Experience: "0-1", Source: "Naukri"},
		{ID: 3, Title: "Data Analyst", Company: "Initech", Location: "Bengaluru", Mode: "Hybrid", Experience: "1-3", Source: "LinkedIn"},
	}
}

func testDeps(t *testing.T) Deps {
	t.Helper()
	kv := store.Open(filepath.Join(t.TempDir(), "state.json"))
	return Deps{Statuses: store.NewStatuses(kv)}
}

func TestRunWithEmptyCriteriaReturnsCatalogOrder(t *testing.T) {
	jobs := pipelineFixture()

	result, _, err := Run(testDeps(t), Steps(Criteria{}), jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, result, []int{1, 2, 3})
}

func TestRunActivePredicatesAreANDed(t *testing.T) {
	criteria := Criteria{
		Location: "Bengaluru",
		Source:   "LinkedIn",
		Mode:     "Remote",
	}

	result, _, err := Run(testDeps(t), Steps(criteria), pipelineFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, result, []int{1})
}

func TestKeywordMatchesTitleAndCompany(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		keyword string
		expect  []int
	}{
		{name: "title substring", keyword: "engineer", expect: []int{1, 2}},
		{name: "company substring", keyword: "initech", expect: []int{3}},
		{name: "case-insensitive", keyword: "ACME", expect: []int{1}},
		{name: "no match", keyword: "devops", expect: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _, err := Run(testDeps(t), Steps(Criteria{Keyword: tt.keyword}), pipelineFixture())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertOrder(t, result, tt.expect)
		})
	}
}

func TestStatusFilterUsesPersistedStatuses(t *testing.T) {
	deps := testDeps(t)
	jobs := pipelineFixture()

	if err := deps.Statuses.Set(jobs[1], store.StatusApplied); err != nil {
		t.Fatalf("setting status: %v", err)
	}

	result, _, err := Run(deps, Steps(Criteria{Status: "Applied"}), jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertOrder(t, result, []int{2})

	// Unmapped jobs default to Not Applied.
	result, _, err = Run(deps, Steps(Criteria{Status: "Not Applied"}), jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertOrder(t, result, []int{1, 3})
}

func TestStatusFilterRejectsUnknownStatus(t *testing.T) {
	_, _, err := Run(testDeps(t), Steps(Criteria{Status: "Ghosted"}), pipelineFixture())
	if err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestThresholdFilter(t *testing.T) {
	deps := testDeps(t)
	deps.Prefs = &matching.Preferences{MinMatchScore: 50}
	deps.Scores = map[int]int{1: 85, 2: 40, 3: 50}

	result, stats, err := Run(deps, Steps(Criteria{ThresholdEnabled: true}), pipelineFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Jobs at the threshold stay; only those below are dropped.
	assertOrder(t, result, []int{1, 3})
	if stats["threshold"].Dropped != 1 {
		t.Fatalf("expected 1 dropped, got %d", stats["threshold"].Dropped)
	}
}

func TestThresholdFilterInactiveWithoutPreferences(t *testing.T) {
	deps := testDeps(t)
	deps.Scores = map[int]int{}

	result, _, err := Run(deps, Steps(Criteria{ThresholdEnabled: true}), pipelineFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, result, []int{1, 2, 3})
}

func TestRunDoesNotMutateInput(t *testing.T) {
	jobs := pipelineFixture()

	_, _, err := Run(testDeps(t), Steps(Criteria{Location: "Pune"}), jobs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertOrder(t, jobs, []int{1, 2, 3})
}
