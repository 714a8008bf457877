package filtering

import (
	"fmt"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
	"github.com/jobtrackr/jobtrackr/internal/matching"
	"github.com/jobtrackr/jobtrackr/internal/store"
	"go.uber.org/zap"
)

// Filter represents a single filtering step applied to the catalog. Steps
// whose criterion is empty report themselves disabled and are skipped.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(deps Deps, jobs []*catalog.Job) ([]*catalog.Job, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
	// Scores is the rebuilt score cache; a missing entry means score 0.
	Scores map[int]int
	// Prefs may be nil, which keeps the threshold step inactive.
	Prefs *matching.Preferences
	// Statuses resolves the persisted per-job application status.
	Statuses *store.Statuses
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Criteria holds the user-entered filter inputs. Empty fields are no-ops.
type Criteria struct {
	Keyword    string
	Location   string
	Mode       string
	Experience string
	Source     string
	Status     string
	// ThresholdEnabled activates score-threshold filtering. It only takes
	// effect when preferences exist.
	ThresholdEnabled bool
}

// Steps builds the filter chain for the given criteria. All active
// predicates are ANDed; each call filters the full catalog, never a previous
// result.
func Steps(criteria Criteria) []Filter {
	return []Filter{
		newKeyword(criteria.Keyword),
		newExact("location", criteria.Location, func(j *catalog.Job) string { return j.Location }),
		newExact("mode", criteria.Mode, func(j *catalog.Job) string { return j.Mode }),
		newExact("experience", criteria.Experience, func(j *catalog.Job) string { return j.Experience }),
		newExact("source", criteria.Source, func(j *catalog.Job) string { return j.Source }),
		newStatus(criteria.Status),
		newThreshold(criteria.ThresholdEnabled),
	}
}

// Run executes the supplied filters sequentially over the catalog jobs and
// returns the surviving subset in catalog order, along with per-step stats.
func Run(deps Deps, steps []Filter, jobs []*catalog.Job) ([]*catalog.Job, map[string]Step, error) {
	// Work on a copy so the caller's slice stays intact.
	current := make([]*catalog.Job, len(jobs))
	copy(current, jobs)

	stats := make(map[string]Step, len(steps))
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}

		next, info, err := step.Apply(deps, current)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Debug("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		stats[step.Name()] = info
		current = next
	}

	return current, stats, nil
}

// keep retains the jobs matching the predicate, preserving order.
func keep(jobs []*catalog.Job, pred func(*catalog.Job) bool) ([]*catalog.Job, Step) {
	initial := len(jobs)
	left := make([]*catalog.Job, 0, initial)
	for _, job := range jobs {
		if pred(job) {
			left = append(left, job)
		}
	}
	return left, Step{Initial: initial, Dropped: initial - len(left), Left: len(left)}
}
