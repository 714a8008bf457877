package filtering

import (
	"testing"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
)

func sortFixture() []*catalog.Job {
	return []*catalog.Job{
		{ID: 1, PostedDaysAgo: 5, SalaryRange: "12 LPA"},
		{ID: 2, PostedDaysAgo: 0, SalaryRange: "₹40k/month"},
		{ID: 3, PostedDaysAgo: 2, SalaryRange: "3.6 LPA"},
	}
}

func ids(jobs []*catalog.Job) []int {
	out := make([]int, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.ID)
	}
	return out
}

func assertOrder(t *testing.T, jobs []*catalog.Job, expect []int) {
	t.Helper()
	got := ids(jobs)
	if len(got) != len(expect) {
		t.Fatalf("expected %v, got %v", expect, got)
	}
	for i := range expect {
		if got[i] != expect[i] {
			t.Fatalf("expected %v, got %v", expect, got)
		}
	}
}

func TestSortModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode   string
		scores map[int]int
		expect []int
	}{
		{mode: "", expect: []int{1, 2, 3}},
		{mode: SortLatest, expect: []int{2, 3, 1}},
		{mode: SortOldest, expect: []int{1, 3, 2}},
		{mode: SortMatchScore, scores: map[int]int{1: 40, 3: 85}, expect: []int{3, 1, 2}},
		{mode: SortSalaryHigh, expect: []int{1, 2, 3}},
		{mode: SortSalaryLow, expect: []int{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run("mode="+tt.mode, func(t *testing.T) {
			t.Parallel()
			jobs := sortFixture()
			if err := Sort(jobs, tt.mode, tt.scores); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertOrder(t, jobs, tt.expect)
		})
	}
}

func TestSortMatchScoreMissingEntriesAreZero(t *testing.T) {
	jobs := sortFixture()
	if err := Sort(jobs, SortMatchScore, map[int]int{2: 10}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Jobs without a score entry sort as zero, keeping their relative order.
	assertOrder(t, jobs, []int{2, 1, 3})
}

func TestSortUnknownMode(t *testing.T) {
	if err := Sort(sortFixture(), "alphabetical", nil); err == nil {
		t.Fatalf("expected error for unknown sort mode")
	}
}
