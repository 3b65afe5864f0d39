// Package mcconfig loads simulator run configuration from a TOML file,
// with viper-backed environment variable overrides, following the same
// SetDefault/AutomaticEnv shape the rest of the codebase's config
// loader uses.
package mcconfig

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is one simulation run's parameters: how many paths, whether to
// use antithetic sampling, how the worker pool and per-batch dispatch
// are sized, and the logging/metrics sinks to wire up.
type Config struct {
	NPath      int  `mapstructure:"n_path"`
	Antithetic bool `mapstructure:"antithetic"`
	BatchSize  int  `mapstructure:"batch_size"`
	NumWorkers int  `mapstructure:"num_workers"`

	TapeBlockSize int `mapstructure:"tape_block_size"`

	Logger  LoggerConfig  `mapstructure:"logger"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// LoggerConfig configures mcconfig-loaded runs' logging sink.
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	FilePath   string `mapstructure:"file_path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// MetricsConfig configures the Prometheus namespace runs report under.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// Load reads a TOML config file at path, applies defaults for unset
// fields (n_path has none and must be set), and honors MCAAD_-prefixed environment variable
// overrides (e.g. MCAAD_N_PATH=1000000).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("mcconfig: read config file: %w", err)
	}

	v.SetEnvPrefix("MCAAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("mcconfig: unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("mcconfig: %w", err)
	}
	return &cfg, nil
}

// Validate rejects configs the simulator cannot run with.
func (c *Config) Validate() error {
	if c.NPath <= 0 {
		return fmt.Errorf("n_path must be positive, got %d", c.NPath)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("num_workers must be >= 0, got %d", c.NumWorkers)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("antithetic", false)
	v.SetDefault("batch_size", 64)
	v.SetDefault("num_workers", 4)
	v.SetDefault("tape_block_size", 16384)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age_days", 30)

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.namespace", "mcaad")
}
