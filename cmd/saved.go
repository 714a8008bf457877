package cmd

import (
	"fmt"
	"strconv"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
	"github.com/jobtrackr/jobtrackr/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var saveCmd = &cobra.Command{
	Use:   "save <job-id>",
	Short: "Save a job for later",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		id := parseJobID(logger, args[0])

		added, err := store.NewSaved(openKV()).Save(id)
		if err != nil {
			logger.Fatal("saving job", zap.Error(err))
		}
		if !added {
			logger.Info("job already saved", zap.Int("job_id", id))
			return
		}
		logger.Info("job saved", zap.Int("job_id", id))
	},
}

var unsaveCmd = &cobra.Command{
	Use:   "unsave <job-id>",
	Short: "Remove a job from the saved list",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		id := parseJobID(logger, args[0])

		removed, err := store.NewSaved(openKV()).Unsave(id)
		if err != nil {
			logger.Fatal("removing saved job", zap.Error(err))
		}
		if !removed {
			logger.Info("job was not saved", zap.Int("job_id", id))
			return
		}
		logger.Info("job removed from saved", zap.Int("job_id", id))
	},
}

var savedCmd = &cobra.Command{
	Use:   "saved",
	Short: "List saved jobs",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		saved := store.NewSaved(openKV())

		ids := saved.IDs()
		if len(ids) == 0 {
			logger.Info("no saved jobs yet")
			return
		}

		cat, err := catalog.Load(viper.GetString("catalog-file"))
		if err != nil {
			logger.Fatal("loading catalog", zap.Error(err))
		}

		for _, id := range ids {
			job := cat.FindByID(id)
			if job == nil {
				// The catalog fixture changed since the job was saved.
				fmt.Printf("[%d] (no longer in catalog)\n", id)
				continue
			}
			fmt.Printf("[%d] %s / %s / %s\n", job.ID, job.Title, job.Company, job.Location)
		}

		logger.Info("saved jobs", zap.Int("count", len(ids)))
	},
}

var savedClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every saved job",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		if err := store.NewSaved(openKV()).Clear(); err != nil {
			logger.Fatal("clearing saved jobs", zap.Error(err))
		}
		logger.Info("saved jobs cleared")
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(unsaveCmd)
	rootCmd.AddCommand(savedCmd)
	savedCmd.AddCommand(savedClearCmd)
}

func parseJobID(logger *zap.Logger, raw string) int {
	id, err := strconv.Atoi(raw)
	if err != nil {
		logger.Fatal("invalid job id", zap.String("argument", raw))
	}
	return id
}
