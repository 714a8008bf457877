package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/jobtrackr/jobtrackr/internal/catalog"
	"github.com/jobtrackr/jobtrackr/internal/clipboard"
	"github.com/jobtrackr/jobtrackr/internal/digest"
	applog "github.com/jobtrackr/jobtrackr/internal/logger"
	"github.com/jobtrackr/jobtrackr/internal/matching"
	"github.com/jobtrackr/jobtrackr/internal/store"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptCopy = "Copy to clipboard"
	PromptDump = "Dump entries to file"
	PromptExit = "Exit"
)

var errExit = errors.New("exit requested")

var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Show today's top matches digest",
	Run: func(cmd *cobra.Command, _ []string) {
		runDigest(cmd)
	},
}

func init() {
	rootCmd.AddCommand(digestCmd)

	digestCmd.Flags().BoolP("yes", "y", false, "print the digest and exit without the action prompt")
	digestCmd.Flags().Bool("regenerate", false, "drop today's cached digest before reading")
}

func runDigest(cmd *cobra.Command) {
	logger := newLogger()

	kv := openKV()
	prefsStore := store.NewPrefs(kv)
	cache := digest.NewCache(kv)

	prefs, ok := prefsStore.Get()
	if !ok {
		// Missing preferences is a recognized state, not an error.
		logger.Info("no preferences set", zap.String("hint", "run 'jobtrackr prefs set' to enable the digest"))
		return
	}

	if cmd.Flag("regenerate").Value.String() == "true" {
		if err := cache.ClearToday(); err != nil {
			logger.Fatal("clearing today's digest", zap.Error(err))
		}
	}

	entries, cached := cache.ForToday()
	if !cached {
		cat, err := catalog.Load(viper.GetString("catalog-file"))
		if err != nil {
			logger.Fatal("loading catalog", zap.Error(err))
		}

		scores := matching.Rebuild(cat, prefs)
		entries = digest.Generate(cat, prefs, scores)

		if err := cache.StoreForToday(entries); err != nil {
			logger.Fatal("storing today's digest", zap.Error(err))
		}
		logger.Info("digest generated", zap.Int("entries", len(entries)))
	} else {
		logger.Info("digest read from cache", zap.Int("entries", len(entries)))
	}

	text := digest.FormatText(time.Now(), entries)
	fmt.Print(text)
	logger.Debug("digest rendered", zap.String("preview", applog.TruncateForLog(text, 200)))

	if len(entries) == 0 {
		logger.Info("no jobs qualified for today's digest", zap.String("hint", "broaden the preferences or wait for new postings"))
		return
	}

	if cmd.Flag("yes").Value.String() == "true" {
		return
	}

	prompt := promptui.Select{
		Label: "What next?",
		Items: []string{PromptCopy, PromptDump, PromptExit},
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleDigestAction(action, logger, text, entries); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Warn("digest action failed", zap.String("action", action), zap.Error(err))
		}
	}
}

func handleDigestAction(action string, logger *zap.Logger, text string, entries []digest.Entry) error {
	switch action {
	case PromptCopy:
		fallback, err := clipboard.Copy(text)
		if err != nil {
			return fmt.Errorf("copy digest: %w", err)
		}
		if fallback != "" {
			logger.Info("clipboard unavailable, wrote digest to file", zap.String("filename", fallback))
			return nil
		}
		logger.Info("digest copied to clipboard")
		return nil
	case PromptDump:
		filename, err := clipboard.DumpJSON("digest_*.json", entries)
		if err != nil {
			return fmt.Errorf("dump digest to file: %w", err)
		}
		logger.Info("dumping digest to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
