package filtering

import (
	"strings"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
	"github.com/jobtrackr/jobtrackr/internal/store"
	"go.uber.org/zap"
)

type keywordFilter struct {
	keyword string
}

// newKeyword creates the step matching the keyword as a case-insensitive
// substring of "title company".
func newKeyword(keyword string) Filter {
	return &keywordFilter{keyword: strings.TrimSpace(keyword)}
}

func (f *keywordFilter) Name() string { return "keyword" }

func (f *keywordFilter) IsEnabled() bool { return f.keyword != "" }

func (f *keywordFilter) Apply(_ Deps, jobs []*catalog.Job) ([]*catalog.Job, Step, error) {
	needle := strings.ToLower(f.keyword)
	left, step := keep(jobs, func(j *catalog.Job) bool {
		haystack := strings.ToLower(j.Title + " " + j.Company)
		return strings.Contains(haystack, needle)
	})
	return left, step, nil
}

type exactFilter struct {
	name   string
	value  string
	lookup func(*catalog.Job) string
}

// newExact creates a step matching one job field exactly.
func newExact(name, value string, lookup func(*catalog.Job) string) Filter {
	return &exactFilter{name: name, value: value, lookup: lookup}
}

func (f *exactFilter) Name() string { return f.name }

func (f *exactFilter) IsEnabled() bool { return f.value != "" }

func (f *exactFilter) Apply(_ Deps, jobs []*catalog.Job) ([]*catalog.Job, Step, error) {
	left, step := keep(jobs, func(j *catalog.Job) bool {
		return f.lookup(j) == f.value
	})
	return left, step, nil
}

type statusFilter struct {
	status string
}

// newStatus creates the step matching the persisted application status.
func newStatus(status string) Filter {
	return &statusFilter{status: status}
}

func (f *statusFilter) Name() string { return "status" }

func (f *statusFilter) IsEnabled() bool { return f.status != "" }

func (f *statusFilter) Apply(deps Deps, jobs []*catalog.Job) ([]*catalog.Job, Step, error) {
	target, err := store.ParseStatus(f.status)
	if err != nil {
		return nil, Step{}, err
	}

	left, step := keep(jobs, func(j *catalog.Job) bool {
		return deps.Statuses.Get(j.ID) == target
	})
	return left, step, nil
}

type thresholdFilter struct {
	enabled bool
}

// newThreshold creates the step excluding jobs below the match threshold.
// Without preferences there are no scores to threshold against, so the step
// passes everything through.
func newThreshold(enabled bool) Filter {
	return &thresholdFilter{enabled: enabled}
}

func (f *thresholdFilter) Name() string { return "threshold" }

func (f *thresholdFilter) IsEnabled() bool { return f.enabled }

func (f *thresholdFilter) Apply(deps Deps, jobs []*catalog.Job) ([]*catalog.Job, Step, error) {
	if deps.Prefs == nil {
		if deps.Logger != nil {
			deps.Logger.Debug("threshold filter inactive", zap.String("reason", "no preferences set"))
		}
		return jobs, Step{Initial: len(jobs), Dropped: 0, Left: len(jobs)}, nil
	}

	threshold := deps.Prefs.Threshold()
	left, step := keep(jobs, func(j *catalog.Job) bool {
		return deps.Scores[j.ID] >= threshold
	})
	return left, step, nil
}
