package model

import "time"

// Config holds every tunable of the analysis pipeline. Values are loaded
// from ~/.panicsense/config.yaml and PANICSENSE_* environment variables;
// DefaultConfig gives the production settings.
type Config struct {
	API      APIConfig      `yaml:"api" mapstructure:"api"`
	Pipeline PipelineConfig `yaml:"pipeline" mapstructure:"pipeline"`
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
	Logging  LoggingConfig  `yaml:"logging" mapstructure:"logging"`
}

// APIConfig configures the remote classification endpoint.
type APIConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// BulkModel serves CSV batch rows; InteractiveModel serves single-text
	// analysis and feedback validation.
	BulkModel        string `yaml:"bulk_model" mapstructure:"bulk_model"`
	InteractiveModel string `yaml:"interactive_model" mapstructure:"interactive_model"`

	BulkMaxTokens        int `yaml:"bulk_max_tokens" mapstructure:"bulk_max_tokens"`
	InteractiveMaxTokens int `yaml:"interactive_max_tokens" mapstructure:"interactive_max_tokens"`

	BulkTimeout        time.Duration `yaml:"bulk_timeout" mapstructure:"bulk_timeout"`
	InteractiveTimeout time.Duration `yaml:"interactive_timeout" mapstructure:"interactive_timeout"`

	// MaxAttempts bounds how many distinct credentials a rate-limited
	// request is retried against. The effective count is min(MaxAttempts,
	// pool size).
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// PipelineConfig configures CSV batch processing.
type PipelineConfig struct {
	BatchSize int `yaml:"batch_size" mapstructure:"batch_size"`

	// Cooldown runs between batches when the file holds more than one
	// batch worth of rows. RowDelay paces individual rows.
	Cooldown time.Duration `yaml:"cooldown" mapstructure:"cooldown"`
	RowDelay time.Duration `yaml:"row_delay" mapstructure:"row_delay"`

	// RetryDelay paces the second pass over rows that failed in their
	// batch.
	RetryDelay time.Duration `yaml:"retry_delay" mapstructure:"retry_delay"`
}

// DatabaseConfig configures optional correction persistence.
type DatabaseConfig struct {
	// Path to the sqlite file. Empty disables persistence; corrections
	// then live only for the process lifetime.
	Path string `yaml:"path" mapstructure:"path"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Pretty bool   `yaml:"pretty" mapstructure:"pretty"`
}

// DefaultConfig returns production settings.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:              "https://api.groq.com/openai/v1",
			BulkModel:            "gemma2-9b-it",
			InteractiveModel:     "deepseek-r1-distill-llama-70b",
			BulkMaxTokens:        500,
			InteractiveMaxTokens: 350,
			BulkTimeout:          15 * time.Second,
			InteractiveTimeout:   30 * time.Second,
			MaxAttempts:          3,
		},
		Pipeline: PipelineConfig{
			BatchSize:  30,
			Cooldown:   60 * time.Second,
			RowDelay:   3 * time.Second,
			RetryDelay: 5 * time.Second,
		},
		Database: DatabaseConfig{
			Path: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: false,
		},
	}
}
