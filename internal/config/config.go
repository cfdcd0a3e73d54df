package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
// It is immutable once Load returns.
type Config struct {
	Data     DataConfig     `yaml:"data" envconfig:"DATA"`
	Engine   EngineConfig   `yaml:"engine" envconfig:"ENGINE"`
	Tracking TrackingConfig `yaml:"tracking" envconfig:"TRACKING"`
	Model    ModelConfig    `yaml:"model" envconfig:"MODEL"`
	Export   ExportConfig   `yaml:"export" envconfig:"EXPORT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	General  GeneralConfig  `yaml:"general" envconfig:"GENERAL"`
}

// DataConfig contains dataset directory configuration
type DataConfig struct {
	RawDir       string `yaml:"raw_dir" envconfig:"RAW_DIR" validate:"required"`
	ProcessedDir string `yaml:"processed_dir" envconfig:"PROCESSED_DIR" validate:"required"`
}

// EngineConfig contains processing-engine session configuration.
// The engine itself is an external collaborator; only its session
// settings are carried here.
type EngineConfig struct {
	AppName string            `yaml:"app_name" envconfig:"APP_NAME" validate:"required"`
	Master  string            `yaml:"master" envconfig:"MASTER"`
	Workers int               `yaml:"workers" envconfig:"WORKERS" validate:"min=1"`
	Configs map[string]string `yaml:"configs" envconfig:"CONFIGS"`
}

// TrackingConfig contains experiment-tracker settings. The tracker is an
// external collaborator; the values are loaded and surfaced, not consumed.
type TrackingConfig struct {
	URI        string `yaml:"uri" envconfig:"URI"`
	Experiment string `yaml:"experiment" envconfig:"EXPERIMENT"`
}

// ModelConfig contains modeling date ranges and seeds for the downstream
// forecasting stage.
type ModelConfig struct {
	RandomSeed int    `yaml:"random_seed" envconfig:"RANDOM_SEED"`
	Horizon    int    `yaml:"horizon" envconfig:"HORIZON" validate:"min=1"`
	TrainStart string `yaml:"train_start" envconfig:"TRAIN_START" validate:"omitempty,datetime=2006-01-02"`
	TrainEnd   string `yaml:"train_end" envconfig:"TRAIN_END" validate:"omitempty,datetime=2006-01-02"`
	TestStart  string `yaml:"test_start" envconfig:"TEST_START" validate:"omitempty,datetime=2006-01-02"`
	TestEnd    string `yaml:"test_end" envconfig:"TEST_END" validate:"omitempty,datetime=2006-01-02"`
}

// ExportConfig contains profile report output configuration
type ExportConfig struct {
	ReportsDir string   `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`
	Formats    []string `yaml:"formats" envconfig:"FORMATS" validate:"dive,oneof=csv json xlsx"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// GeneralConfig contains process-wide settings and feature flags
type GeneralConfig struct {
	LogLevel     string       `yaml:"log_level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	FeatureFlags FeatureFlags `yaml:"feature_flags" envconfig:"FEATURE_FLAGS"`
}

// FeatureFlags toggles behavior of downstream stages
type FeatureFlags struct {
	UseNewPreprocessor bool `yaml:"use_new_preprocessor" envconfig:"USE_NEW_PREPROCESSOR"`
}

// Load loads configuration from defaults, an optional YAML file, and
// environment variable overrides, in that precedence order (env wins).
func Load() (*Config, error) {
	cfg := *Default()

	if configFile := getConfigFilePath(); configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("SRS", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file over the
// defaults, without env overrides. Intended for tests and tooling.
func LoadFromFile(path string) (*Config, error) {
	cfg := *Default()
	if err := loadFromFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadFromFile unmarshals a YAML file over the given config
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var errs validator.ValidationErrors
		if errors.As(err, &errs) && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("invalid value for %s: failed %q check", strings.ToLower(e.Namespace()), e.Tag())
		}
		return err
	}

	if c.Export.Formats == nil {
		c.Export.Formats = []string{"csv", "json"}
	}

	return nil
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
		"../configs/config.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use defaults and env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Data: DataConfig{
			RawDir:       "data/raw",
			ProcessedDir: "data/processed",
		},
		Engine: EngineConfig{
			AppName: "srs-profiler",
			Master:  "local",
			Workers: 4,
			Configs: map[string]string{},
		},
		Tracking: TrackingConfig{
			URI:        "http://localhost:5000",
			Experiment: "saudi-retail-sales",
		},
		Model: ModelConfig{
			RandomSeed: 42,
			Horizon:    30,
		},
		Export: ExportConfig{
			ReportsDir: "data/reports",
			Formats:    []string{"csv", "json"},
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/srscli.log",
		},
		General: GeneralConfig{
			LogLevel: "info",
			FeatureFlags: FeatureFlags{
				UseNewPreprocessor: false,
			},
		},
	}
}
