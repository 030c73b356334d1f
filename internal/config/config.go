package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	API      APIConfig      `yaml:"api" mapstructure:"api"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Registry RegistryConfig `yaml:"registry" mapstructure:"registry"`
	Batch    BatchConfig    `yaml:"batch" mapstructure:"batch"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// APIConfig holds EDINET API access settings. The subscription key is
// issued through the EDINET API portal and sent on every request.
type APIConfig struct {
	Key             string  `yaml:"key" mapstructure:"key"`
	BaseURL         string  `yaml:"base_url" mapstructure:"base_url"`
	TimeoutSecs     int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RequestsPerSec  float64 `yaml:"requests_per_sec" mapstructure:"requests_per_sec"`
	RetryAttempts   int     `yaml:"retry_attempts" mapstructure:"retry_attempts"`
	RetryBackoffMs  int     `yaml:"retry_backoff_ms" mapstructure:"retry_backoff_ms"`
	RetryMaxWaitMs  int     `yaml:"retry_max_wait_ms" mapstructure:"retry_max_wait_ms"`
	RetryMultiplier float64 `yaml:"retry_multiplier" mapstructure:"retry_multiplier"`
}

// StoreConfig configures the local document and report cache.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// RegistryConfig points at the EDINET code list CSVs used for filer
// lookup. Both files are optional; lookup degrades to archive-only
// identity when absent.
type RegistryConfig struct {
	EntityCSV string `yaml:"entity_csv" mapstructure:"entity_csv"`
	FundCSV   string `yaml:"fund_csv" mapstructure:"fund_csv"`
}

// BatchConfig configures concurrent batch parsing.
type BatchConfig struct {
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("EDINET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. Keys without a meaningful default still get an empty one so
	// AutomaticEnv can see them during Unmarshal.
	v.SetDefault("api.key", "")
	v.SetDefault("api.base_url", "https://api.edinet-fsa.go.jp/api/v2")
	v.SetDefault("api.timeout_secs", 60)
	v.SetDefault("api.requests_per_sec", 2.0)
	v.SetDefault("api.retry_attempts", 3)
	v.SetDefault("api.retry_backoff_ms", 500)
	v.SetDefault("api.retry_max_wait_ms", 30000)
	v.SetDefault("api.retry_multiplier", 2.0)
	v.SetDefault("store.path", "edinet.db")
	v.SetDefault("registry.entity_csv", "")
	v.SetDefault("registry.fund_csv", "")
	v.SetDefault("batch.max_concurrent", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
