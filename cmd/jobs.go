package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
	"github.com/jobtrackr/jobtrackr/internal/filtering"
	applog "github.com/jobtrackr/jobtrackr/internal/logger"
	"github.com/jobtrackr/jobtrackr/internal/matching"
	"github.com/jobtrackr/jobtrackr/internal/store"
	"github.com/jobtrackr/jobtrackr/internal/utils"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// debounceWindow coalesces rapid config changes in watch mode into a single
// re-filter.
const debounceWindow = 150 * time.Millisecond

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Filter and sort the job catalog",
	Run: func(cmd *cobra.Command, _ []string) {
		jobs(cmd)
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)

	jobsCmd.Flags().StringP("keyword", "k", "", "substring match against title and company")
	jobsCmd.Flags().String("location", "", "exact location match")
	jobsCmd.Flags().String("mode", "", "exact mode match (Remote, Hybrid, Onsite)")
	jobsCmd.Flags().String("experience", "", "exact experience tag match")
	jobsCmd.Flags().String("source", "", "exact source match")
	jobsCmd.Flags().String("status", "", "match persisted application status")
	jobsCmd.Flags().StringP("sort", "s", "", "sort mode: latest, oldest, match-score, salary-high, salary-low")
	jobsCmd.Flags().BoolP("threshold", "t", false, "exclude jobs below the preference match threshold")
	jobsCmd.Flags().BoolP("watch", "w", false, "re-run when the config file changes")

	for _, flag := range []string{"keyword", "location", "mode", "experience", "source", "status", "sort", "threshold"} {
		viper.BindPFlag(flag, jobsCmd.Flags().Lookup(flag))
	}
}

func jobs(cmd *cobra.Command) {
	logger := newLogger()

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	cat, err := catalog.Load(config.CatalogFile)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	logger.Info("catalog loaded", zap.Int("count", cat.Len()))

	if err := renderJobs(logger, cat); err != nil {
		logger.Fatal("listing jobs", zap.Error(err))
	}

	if cmd.Flag("watch").Value.String() != "true" {
		return
	}

	watchJobs(logger, cat)
}

// watchJobs re-renders the listing whenever the config file changes,
// debounced so a burst of editor writes produces one run.
func watchJobs(logger *zap.Logger, cat *catalog.Catalog) {
	debouncer := utils.NewDebouncer(debounceWindow)
	defer debouncer.Stop()

	viper.OnConfigChange(func(e fsnotify.Event) {
		logger.Debug("config changed", zap.String("file", e.Name))
		debouncer.Trigger(func() {
			if err := renderJobs(logger, cat); err != nil {
				logger.Warn("re-listing jobs", zap.Error(err))
			}
		})
	})
	viper.WatchConfig()

	logger.Info("watching for config changes", zap.String("file", viper.ConfigFileUsed()))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("exiting", zap.String("reason", "signal received"))
}

func renderJobs(logger *zap.Logger, cat *catalog.Catalog) error {
	kv := openKV()
	prefsStore := store.NewPrefs(kv)
	saved := store.NewSaved(kv)
	statuses := store.NewStatuses(kv)

	prefs, hasPrefs := prefsStore.Get()
	scores := matching.Rebuild(cat, prefs)

	criteria := filtering.Criteria{
		Keyword:          viper.GetString("keyword"),
		Location:         viper.GetString("location"),
		Mode:             viper.GetString("mode"),
		Experience:       viper.GetString("experience"),
		Source:           viper.GetString("source"),
		Status:           viper.GetString("status"),
		ThresholdEnabled: viper.GetBool("threshold"),
	}

	logger = applog.WithFields(logger, applog.StringFields(
		applog.StringField{Key: "keyword", Value: criteria.Keyword},
		applog.StringField{Key: "sort", Value: viper.GetString("sort")},
	)...)

	deps := filtering.Deps{
		Logger:   logger,
		Scores:   scores,
		Prefs:    prefs,
		Statuses: statuses,
	}

	result, stats, err := filtering.Run(deps, filtering.Steps(criteria), cat.Jobs)
	if err != nil {
		return err
	}

	if err := filtering.Sort(result, viper.GetString("sort"), scores); err != nil {
		return err
	}

	if len(result) == 0 {
		// Keep the two empty states distinguishable: nothing above the
		// threshold reads differently than nothing matching at all.
		if info, ok := stats["threshold"]; ok && info.Initial > 0 && info.Left == 0 {
			logger.Info("no jobs at or above the match threshold", zap.Int("threshold", prefs.Threshold()))
			return nil
		}
		logger.Info("no jobs match the current filters")
		return nil
	}

	for _, job := range result {
		printJob(job, scores, hasPrefs, saved, statuses)
	}

	logger.Info("listing done", zap.Int("count", len(result)))
	return nil
}

func printJob(job *catalog.Job, scores map[int]int, hasPrefs bool, saved *store.Saved, statuses *store.Statuses) {
	line := fmt.Sprintf("[%d] %s / %s / %s / %s / %s", job.ID, job.Title, job.Company, job.Location, job.Mode, job.Experience)

	if job.SalaryRange != "" {
		line += " / " + job.SalaryRange
	}

	// Score display is suppressed entirely when no preferences exist.
	if hasPrefs {
		line += fmt.Sprintf(" / %d%% match", scores[job.ID])
	}

	if saved.Contains(job.ID) {
		line += " [saved]"
	}
	if status := statuses.Get(job.ID); status != store.StatusNotApplied {
		line += fmt.Sprintf(" [%s]", status)
	}

	fmt.Println(line)
}
