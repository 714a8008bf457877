package proof

import (
	"strings"

	"github.com/jobtrackr/jobtrackr/internal/store"
)

// CheckIDs enumerates the self-test checklist. Every id must be flagged true
// before the work counts as shipped.
var CheckIDs = []string{
	"catalog-loads",
	"scoring-example",
	"saved-roundtrip",
	"status-log-capped",
	"digest-idempotent",
	"salary-parse",
}

// Status is the derived submission state.
type Status struct {
	TestsPassed  bool
	LinksPresent bool
	Shipped      bool
}

// Derive computes the submission status from the persisted checklist flags
// and proof links. A link only counts when it starts with "http".
func Derive(flags map[string]bool, links store.ProofLinks) Status {
	tests := true
	for _, id := range CheckIDs {
		if !flags[id] {
			tests = false
			break
		}
	}

	linksPresent := isLink(links.Repo) && isLink(links.Deploy) && isLink(links.Demo)

	return Status{
		TestsPassed:  tests,
		LinksPresent: linksPresent,
		Shipped:      tests && linksPresent,
	}
}

func isLink(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "http")
}
