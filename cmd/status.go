package cmd

import (
	"fmt"
	"time"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
	"github.com/jobtrackr/jobtrackr/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Track application status per job",
}

var statusSetCmd = &cobra.Command{
	Use:   "set <job-id> [status]",
	Short: "Set the application status of a job",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		id := parseJobID(logger, args[0])

		cat, err := catalog.Load(viper.GetString("catalog-file"))
		if err != nil {
			logger.Fatal("loading catalog", zap.Error(err))
		}

		job := cat.FindByID(id)
		if job == nil {
			logger.Fatal("job not found in catalog", zap.Int("job_id", id))
		}

		status, err := pickStatus(args)
		if err != nil {
			logger.Fatal("choosing status", zap.Error(err))
		}

		if err := store.NewStatuses(openKV()).Set(job, status); err != nil {
			logger.Fatal("saving status", zap.Error(err))
		}

		logger.Info("status updated",
			zap.Int("job_id", id),
			zap.String("title", job.Title),
			zap.String("status", string(status)),
		)
	},
}

var statusLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the status-change history, most recent first",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()

		updates := store.NewStatuses(openKV()).Updates()
		if len(updates) == 0 {
			logger.Info("no status changes recorded yet")
			return
		}

		for _, update := range updates {
			when := time.UnixMilli(update.Timestamp).Format(time.RFC3339)
			fmt.Printf("%s  [%d] %s / %s -> %s\n", when, update.JobID, update.JobTitle, update.Company, update.Status)
		}

		logger.Info("status history", zap.Int("count", len(updates)))
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.AddCommand(statusSetCmd)
	statusCmd.AddCommand(statusLogCmd)
}

// pickStatus resolves the status from the second argument, falling back to
// an interactive prompt when it was omitted.
func pickStatus(args []string) (store.Status, error) {
	if len(args) == 2 {
		return store.ParseStatus(args[1])
	}

	prompt := promptui.Select{
		Label: "Choose a status",
		Items: []string{
			string(store.StatusApplied),
			string(store.StatusRejected),
			string(store.StatusSelected),
			string(store.StatusNotApplied),
		},
	}

	_, chosen, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return store.ParseStatus(chosen)
}
