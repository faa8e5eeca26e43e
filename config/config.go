package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Chat      ChatConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds catalog dataset configuration
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerClient   int           `mapstructure:"per_client"`
	Window      time.Duration `mapstructure:"window"`
	GlobalRPS   float64       `mapstructure:"global_rps"`
	GlobalBurst int           `mapstructure:"global_burst"`
}

// ChatConfig holds conversation configuration.
// MaxTranscriptTurns caps transcript growth; 0 means unlimited.
type ChatConfig struct {
	MaxTranscriptTurns int `mapstructure:"max_transcript_turns"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/consumesafe/")

	// Environment variable settings
	v.SetEnvPrefix("CONSUMESAFE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := validate(&config); err != nil {
		return nil, eris.Wrap(err, "config: validate")
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*", "http://127.0.0.1:*"})

	// Catalog defaults
	v.SetDefault("catalog.path", "data/boycott_products.csv")

	// Cache defaults
	v.SetDefault("cache.ttl", "1h")
	v.SetDefault("cache.cleanup_interval", "10m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_client", 100)
	v.SetDefault("ratelimit.window", "1m")
	v.SetDefault("ratelimit.global_rps", 500)
	v.SetDefault("ratelimit.global_burst", 100)

	// Chat defaults
	v.SetDefault("chat.max_transcript_turns", 0)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required (set CONSUMESAFE_CATALOG_PATH)")
	}

	if config.RateLimit.PerClient <= 0 {
		return fmt.Errorf("ratelimit.per_client must be positive, got: %d", config.RateLimit.PerClient)
	}

	if config.RateLimit.Window <= 0 {
		return fmt.Errorf("ratelimit.window must be positive, got: %s", config.RateLimit.Window)
	}

	if config.Chat.MaxTranscriptTurns < 0 {
		return fmt.Errorf("chat.max_transcript_turns must be >= 0, got: %d", config.Chat.MaxTranscriptTurns)
	}

	return nil
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
