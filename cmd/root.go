package cmd

import (
	"log"
	"strings"

	"github.com/jobtrackr/jobtrackr/internal/logger"
	"github.com/jobtrackr/jobtrackr/internal/store"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "jobtrackr"

	defaultCatalogFile = "catalog.json"
	defaultStateFile   = "jobtrackr-state.json"
)

type Config struct {
	CatalogFile string `mapstructure:"catalog-file"`
	StateFile   string `mapstructure:"state-file"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobtrackr is a simple cli for tracking job postings against your matching preferences",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("state-file", "JOBTRACKR_STATE_FILE"); err != nil {
		log.Fatalf("binding JOBTRACKR_STATE_FILE environment variable: %v", err)
	}
	if err := viper.BindEnv("catalog-file", "JOBTRACKR_CATALOG_FILE"); err != nil {
		log.Fatalf("binding JOBTRACKR_CATALOG_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is jobtrackr.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.SetDefault("catalog-file", defaultCatalogFile)
	viper.SetDefault("state-file", defaultStateFile)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional: every setting has a default and can come
	// from flags. An explicitly requested file still must parse.
	if err := viper.ReadInConfig(); err != nil {
		if cfgFile == "" {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// newLogger builds the shared zap logger from the persistent flags.
func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// openKV opens the durable state file configured for this run.
func openKV() *store.KV {
	return store.Open(viper.GetString("state-file"))
}

// splitList parses user-entered comma-separated text into a list of trimmed,
// non-empty strings. This is the only place loose input becomes structured
// preference data.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
