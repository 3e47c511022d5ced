// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like FEED_API_TOKEN
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, ignored if absent.
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig()

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion.
func overrideEmptyConfig(cfg *Config) {
	if cfg.Feed.APIToken == "" {
		if val := os.Getenv("FEED_API_TOKEN"); val != "" {
			cfg.Feed.APIToken = val
		}
	}
	if cfg.Feed.BaseURL == "" {
		if val := os.Getenv("FEED_BASE_URL"); val != "" {
			cfg.Feed.BaseURL = val
		}
	}
	if cfg.Cache.Redis.Address == "" {
		if val := os.Getenv("REDIS_ADDRESS"); val != "" {
			cfg.Cache.Redis.Address = val
		}
	}
	if cfg.Cache.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Cache.Redis.Password = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "ticket-scout"
	}

	// Server defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.TimeoutMs == 0 {
		cfg.Server.TimeoutMs = 30000
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}

	// Feed client defaults
	if cfg.Feed.Timeout == 0 {
		cfg.Feed.Timeout = 10000
	}
	if cfg.Feed.RateLimitPerSecond == 0 {
		cfg.Feed.RateLimitPerSecond = 10
	}
	if cfg.Feed.MaxRetries == 0 {
		cfg.Feed.MaxRetries = 3
	}
	if cfg.Feed.BackoffInitial == 0 {
		cfg.Feed.BackoffInitial = 500
	}
	if cfg.Feed.BackoffMax == 0 {
		cfg.Feed.BackoffMax = 8000
	}
	if cfg.Feed.PerPage == 0 {
		cfg.Feed.PerPage = 100
	}
	if cfg.Feed.PerPage > 100 {
		cfg.Feed.PerPage = 100 // feed hard limit
	}

	// Cache defaults
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = 1000
	}
	if cfg.Cache.MaxMemoryMB == 0 {
		cfg.Cache.MaxMemoryMB = 64
	}
	if cfg.Cache.DefaultTTL == 0 {
		cfg.Cache.DefaultTTL = 600000 // 10 minutes
	}
	if cfg.Cache.RequestScopedTTL == 0 {
		cfg.Cache.RequestScopedTTL = 300000 // fixed 5-minute namespace
	}

	// Search cascade defaults, tuned empirically
	if cfg.Search.WeeksAheadDefault == 0 {
		cfg.Search.WeeksAheadDefault = 4
	}
	if cfg.Search.DirectRadiusMiles == 0 {
		cfg.Search.DirectRadiusMiles = 25
	}
	if cfg.Search.BroadRadiusMiles == 0 {
		cfg.Search.BroadRadiusMiles = 50
	}
	if cfg.Search.BroadWindowDays == 0 {
		cfg.Search.BroadWindowDays = 14
	}
	if cfg.Search.MaxBroadLocations == 0 {
		cfg.Search.MaxBroadLocations = 3
	}
	if cfg.Search.SuggestLimit == 0 {
		cfg.Search.SuggestLimit = 10
	}
	if cfg.Search.FuzzyAcceptScore == 0 {
		cfg.Search.FuzzyAcceptScore = 12
	}
	if cfg.Search.FuzzyGenericScore == 0 {
		cfg.Search.FuzzyGenericScore = 8
	}
	if cfg.Search.FuzzyMinTokenChars == 0 {
		cfg.Search.FuzzyMinTokenChars = 4
	}

	if cfg.Tiering.MaxRecommendations == 0 {
		cfg.Tiering.MaxRecommendations = 5
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// validateConfig validates critical configuration fields.
func validateConfig(cfg *Config) error {
	if cfg.Feed.BaseURL == "" {
		return fmt.Errorf("feed.base_url is required")
	}

	if cfg.Cache.Backend != "memory" && cfg.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.Backend == "redis" && cfg.Cache.Redis.Address == "" {
		return fmt.Errorf("cache.redis.address is required when cache.backend is 'redis'")
	}

	return nil
}
