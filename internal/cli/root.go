package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/draiimon/PanicSense-Final/internal/classify"
	"github.com/draiimon/PanicSense-Final/internal/keypool"
	"github.com/draiimon/PanicSense-Final/internal/llm"
	"github.com/draiimon/PanicSense-Final/internal/model"
	"github.com/draiimon/PanicSense-Final/internal/store"
	"github.com/draiimon/PanicSense-Final/internal/trained"
)

var (
	cfgFile string
	verbose bool
	dbPath  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "panicsense",
	Short: "PanicSense - disaster sentiment analysis for Philippine social media",
	Long: `PanicSense classifies disaster-related Philippine social media and news
text into five emotional categories (Panic, Fear/Anxiety, Disbelief,
Resilience, Neutral), extracts the disaster type and location, and learns
from user corrections.

Remote classification uses rotating API credentials; when no credentials
are available the built-in rule engine takes over, so analysis always
produces a result.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("panicsense v1.0.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.panicsense/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite file for persisted corrections (default: in-memory only)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	// Credentials commonly live in a local .env during development.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.panicsense")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("PANICSENSE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig merges file and environment settings over the defaults.
func loadConfig() model.Config {
	cfg := model.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid configuration, using defaults: %v\n", err)
		return model.DefaultConfig()
	}
	return cfg
}

func newLogger(cfg model.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	if cfg.Pretty {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// session holds everything a command needs to classify and train.
type session struct {
	cfg         model.Config
	log         zerolog.Logger
	cache       *trained.Cache
	store       *store.Store
	interactive llm.Classifier
	analyzer    *classify.Analyzer
}

// newSession wires credentials, cache, optional persistence and the
// analyzer chain from the current configuration.
func newSession() (*session, error) {
	cfg := loadConfig()
	log := newLogger(cfg.Logging)

	cache := trained.New()
	var st *store.Store
	if cfg.Database.Path != "" {
		var err error
		st, err = store.Open(cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("open corrections store: %w", err)
		}
		n, err := st.LoadInto(cache)
		if err != nil {
			return nil, fmt.Errorf("load corrections: %w", err)
		}
		log.Info().Int("corrections", n).Str("path", cfg.Database.Path).Msg("loaded trained examples")
	}

	bulkPool := keypool.FromEnv()
	validationPool := keypool.ValidationFromEnv()

	var bulk, interactive llm.Classifier
	if bulkPool.Len() > 0 {
		bulk = llm.NewBulk(bulkPool, cfg.API, log)
	}
	switch {
	case validationPool.Len() > 0:
		interactive = llm.NewInteractive(validationPool, cfg.API, log)
	case bulkPool.Len() > 0:
		// No dedicated validation credential; borrow the rotation pool.
		interactive = llm.NewInteractive(bulkPool, cfg.API, log)
	}
	if bulkPool.Len() == 0 {
		log.Warn().Msg("no API credentials configured, using rule-based analysis only")
	}

	return &session{
		cfg:         cfg,
		log:         log,
		cache:       cache,
		store:       st,
		interactive: interactive,
		analyzer:    classify.New(cache, interactive, bulk, log),
	}, nil
}

// Close releases session resources.
func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.Warn().Err(err).Msg("close corrections store")
		}
	}
}
