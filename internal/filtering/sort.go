package filtering

import (
	"fmt"
	"sort"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
)

// Sort mode names as accepted on the command line.
const (
	SortLatest     = "latest"
	SortOldest     = "oldest"
	SortMatchScore = "match-score"
	SortSalaryHigh = "salary-high"
	SortSalaryLow  = "salary-low"
)

// Sort orders jobs in place by the given mode. An empty mode preserves the
// input order. All sorts are stable, so equally ranked jobs keep their
// catalog order.
func Sort(jobs []*catalog.Job, mode string, scores map[int]int) error {
	switch mode {
	case "":
		return nil
	case SortLatest:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].PostedDaysAgo < jobs[j].PostedDaysAgo
		})
	case SortOldest:
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].PostedDaysAgo > jobs[j].PostedDaysAgo
		})
	case SortMatchScore:
		sort.SliceStable(jobs, func(i, j int) bool {
			return scores[jobs[i].ID] > scores[jobs[j].ID]
		})
	case SortSalaryHigh:
		sort.SliceStable(jobs, func(i, j int) bool {
			return ParseSalaryApprox(jobs[i].SalaryRange) > ParseSalaryApprox(jobs[j].SalaryRange)
		})
	case SortSalaryLow:
		sort.SliceStable(jobs, func(i, j int) bool {
			return ParseSalaryApprox(jobs[i].SalaryRange) < ParseSalaryApprox(jobs[j].SalaryRange)
		})
	default:
		return fmt.Errorf("unknown sort mode %q", mode)
	}
	return nil
}
