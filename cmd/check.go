package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
	"github.com/jobtrackr/jobtrackr/internal/digest"
	"github.com/jobtrackr/jobtrackr/internal/filtering"
	"github.com/jobtrackr/jobtrackr/internal/matching"
	"github.com/jobtrackr/jobtrackr/internal/proof"
	"github.com/jobtrackr/jobtrackr/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the self-test checklist and report submission status",
	Run: func(_ *cobra.Command, _ []string) {
		runChecks()
	},
}

var checkLinksCmd = &cobra.Command{
	Use:   "links",
	Short: "Record the submission proof links",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()

		links := store.ProofLinks{
			Repo:   flagString(cmd, "repo"),
			Deploy: flagString(cmd, "deploy"),
			Demo:   flagString(cmd, "demo"),
		}

		checklist := store.NewChecklist(openKV())
		if err := checklist.SetProof(links); err != nil {
			logger.Fatal("saving proof links", zap.Error(err))
		}

		logger.Info("proof links saved")
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.AddCommand(checkLinksCmd)

	checkLinksCmd.Flags().String("repo", "", "repository URL")
	checkLinksCmd.Flags().String("deploy", "", "deployment URL")
	checkLinksCmd.Flags().String("demo", "", "demo recording URL")
}

func runChecks() {
	logger := newLogger()
	checklist := store.NewChecklist(openKV())

	checks := map[string]func() bool{
		"catalog-loads":     checkCatalogLoads,
		"scoring-example":   checkScoringExample,
		"saved-roundtrip":   checkSavedRoundtrip,
		"status-log-capped": checkStatusLogCapped,
		"digest-idempotent": checkDigestIdempotent,
		"salary-parse":      checkSalaryParse,
	}

	for _, id := range proof.CheckIDs {
		run, ok := checks[id]
		if !ok {
			continue
		}

		passed := run()
		if err := checklist.SetFlag(id, passed); err != nil {
			logger.Fatal("saving check result", zap.String("check", id), zap.Error(err))
		}

		marker := "PASS"
		if !passed {
			marker = "FAIL"
		}
		fmt.Printf("%s: %s\n", marker, id)
	}

	status := proof.Derive(checklist.Flags(), checklist.Proof())
	logger.Info("submission status",
		zap.Bool("tests_passed", status.TestsPassed),
		zap.Bool("links_present", status.LinksPresent),
		zap.Bool("shipped", status.Shipped),
	)
}

func checkCatalogLoads() bool {
	cat, err := catalog.Load(viper.GetString("catalog-file"))
	return err == nil && cat.Len() > 0
}

// checkScoringExample verifies the documented worked example: every bonus
// except the description fallback fires, totalling 85.
func checkScoringExample() bool {
	job := &catalog.Job{
		Title:         "Backend Engineer",
		Description:   "Python required",
		Skills:        []string{"Python"},
		Location:      "Remote",
		Mode:          "Remote",
		Experience:    "1-3",
		PostedDaysAgo: 1,
		Source:        "LinkedIn",
	}
	prefs := &matching.Preferences{
		RoleKeywords:       []string{"backend"},
		PreferredLocations: []string{"Remote"},
		PreferredModes:     []string{"Remote"},
		ExperienceLevel:    "mid",
		Skills:             []string{"python"},
		MinMatchScore:      40,
	}
	return matching.Score(job, prefs) == 85
}

func checkSavedRoundtrip() bool {
	kv, cleanup, err := scratchKV()
	if err != nil {
		return false
	}
	defer cleanup()

	saved := store.NewSaved(kv)
	saved.Save(7)
	saved.Save(7)
	if len(saved.IDs()) != 1 {
		return false
	}
	if removed, _ := saved.Unsave(99); removed {
		return false
	}
	return true
}

func checkStatusLogCapped() bool {
	kv, cleanup, err := scratchKV()
	if err != nil {
		return false
	}
	defer cleanup()

	statuses := store.NewStatuses(kv)
	job := &catalog.Job{ID: 1, Title: "T", Company: "C"}
	for i := 0; i < 51; i++ {
		if err := statuses.Set(job, store.StatusApplied); err != nil {
			return false
		}
	}
	return len(statuses.Updates()) == 50
}

func checkDigestIdempotent() bool {
	cat := &catalog.Catalog{Jobs: []*catalog.Job{
		{ID: 1, Title: "Backend Engineer", Source: "LinkedIn", PostedDaysAgo: 1},
		{ID: 2, Title: "Frontend Engineer", PostedDaysAgo: 3},
	}}
	prefs := &matching.Preferences{RoleKeywords: []string{"engineer"}}
	scores := matching.Rebuild(cat, prefs)

	first := digest.Generate(cat, prefs, scores)
	second := digest.Generate(cat, prefs, scores)
	return reflect.DeepEqual(first, second)
}

func checkSalaryParse() bool {
	return filtering.ParseSalaryApprox("12 LPA") == 1_200_000 &&
		filtering.ParseSalaryApprox("₹40k/month") == 480_000 &&
		filtering.ParseSalaryApprox("3.6 LPA") == 360_000 &&
		filtering.ParseSalaryApprox("competitive") == 0
}

// scratchKV gives the checks a throwaway state file so they never touch the
// user's real state.
func scratchKV() (*store.KV, func(), error) {
	dir, err := os.MkdirTemp("", "jobtrackr_check_")
	if err != nil {
		return nil, nil, err
	}
	return store.Open(filepath.Join(dir, "state.json")), func() { os.RemoveAll(dir) }, nil
}
