package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/jobtrackr/jobtrackr/internal/matching"
	"github.com/jobtrackr/jobtrackr/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage matching preferences",
}

var prefsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or overwrite the matching preferences",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()

		minScore, _ := cmd.Flags().GetInt("min-score")
		if minScore < 0 || minScore > 100 {
			logger.Fatal("min-score must be within 0..100", zap.Int("min_score", minScore))
		}

		prefs := &matching.Preferences{
			RoleKeywords:       splitList(flagString(cmd, "role-keywords")),
			PreferredLocations: splitList(flagString(cmd, "locations")),
			PreferredModes:     splitList(flagString(cmd, "modes")),
			ExperienceLevel:    flagString(cmd, "experience"),
			Skills:             splitList(flagString(cmd, "skills")),
			MinMatchScore:      minScore,
		}

		if err := store.NewPrefs(openKV()).Set(prefs); err != nil {
			logger.Fatal("saving preferences", zap.Error(err))
		}

		logger.Info("preferences saved",
			zap.Strings("role_keywords", prefs.RoleKeywords),
			zap.String("experience_level", prefs.ExperienceLevel),
			zap.Int("min_match_score", prefs.MinMatchScore),
		)
	},
}

var prefsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored preferences",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()

		prefs, ok := store.NewPrefs(openKV()).Get()
		if !ok {
			logger.Info("no preferences set", zap.String("hint", "run 'jobtrackr prefs set' to enable match scoring"))
			return
		}

		// do not bother error since the value round-tripped through storage
		pretty, _ := json.MarshalIndent(prefs, "", "  ")
		fmt.Println(string(pretty))
	},
}

var prefsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored preferences and disable scoring",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		if err := store.NewPrefs(openKV()).Clear(); err != nil {
			logger.Fatal("clearing preferences", zap.Error(err))
		}
		logger.Info("preferences cleared")
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsSetCmd)
	prefsCmd.AddCommand(prefsShowCmd)
	prefsCmd.AddCommand(prefsClearCmd)

	prefsSetCmd.Flags().String("role-keywords", "", "comma-separated role keywords, e.g. 'backend,golang'")
	prefsSetCmd.Flags().String("locations", "", "comma-separated preferred locations")
	prefsSetCmd.Flags().String("modes", "", "comma-separated preferred modes (Remote, Hybrid, Onsite)")
	prefsSetCmd.Flags().String("experience", "", "experience level: intern, junior, mid, senior, lead")
	prefsSetCmd.Flags().String("skills", "", "comma-separated skills")
	prefsSetCmd.Flags().Int("min-score", matching.DefaultThreshold, "minimum match score for threshold filtering")
}

func flagString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}
