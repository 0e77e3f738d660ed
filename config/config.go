package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Scoring strategy names accepted in configuration.
const (
	StrategyEmbedding  = "embedding"
	StrategyClassifier = "classifier"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Scoring   ScoringConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DataConfig holds the file paths of the startup-loaded artifacts:
// the product catalog CSV and the exported similarity model.
type DataConfig struct {
	CatalogPath string `mapstructure:"catalog_path"`
	ModelPath   string `mapstructure:"model_path"`
}

// ScoringConfig selects the scoring strategy and result shaping.
type ScoringConfig struct {
	Strategy           string `mapstructure:"strategy"` // "embedding" or "classifier"
	TopN               int    `mapstructure:"top_n"`
	RoutinePerStep     int    `mapstructure:"routine_per_step"`
	EnableDebugLogging bool   `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds result-cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/skinlens/")

	v.SetEnvPrefix("SKINLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("data.catalog_path", "data/catalog.csv")
	v.SetDefault("data.model_path", "data/tfidf_model.json")

	v.SetDefault("scoring.strategy", StrategyEmbedding)
	v.SetDefault("scoring.top_n", 5)
	v.SetDefault("scoring.routine_per_step", 2)
	v.SetDefault("scoring.enable_debug_logging", false)

	v.SetDefault("cache.ttl", "1h")

	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Data.CatalogPath == "" {
		return fmt.Errorf("catalog path is required (set SKINLENS_DATA_CATALOG_PATH)")
	}
	if config.Data.ModelPath == "" {
		return fmt.Errorf("model path is required (set SKINLENS_DATA_MODEL_PATH)")
	}

	if config.Scoring.Strategy != StrategyEmbedding && config.Scoring.Strategy != StrategyClassifier {
		return fmt.Errorf("scoring strategy must be %q or %q, got: %s",
			StrategyEmbedding, StrategyClassifier, config.Scoring.Strategy)
	}

	if config.Scoring.TopN <= 0 {
		return fmt.Errorf("scoring top_n must be positive, got: %d", config.Scoring.TopN)
	}

	return nil
}
