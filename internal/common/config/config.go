// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Feed    FeedConfig    `mapstructure:"feed"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Search  SearchConfig  `mapstructure:"search"`
	Tiering TieringConfig `mapstructure:"tiering"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	TimeoutMs   int      `mapstructure:"timeout"` // milliseconds
}

// FeedConfig holds settings for the marketplace events-feed client.
type FeedConfig struct {
	BaseURL            string `mapstructure:"base_url"`
	APIToken           string `mapstructure:"api_token"`
	Timeout            int    `mapstructure:"timeout"`               // milliseconds
	RateLimitPerSecond int    `mapstructure:"rate_limit_per_second"` // rolling one-second window
	MaxRetries         int    `mapstructure:"max_retries"`
	BackoffInitial     int    `mapstructure:"backoff_initial"` // milliseconds
	BackoffMax         int    `mapstructure:"backoff_max"`     // milliseconds
	PerPage            int    `mapstructure:"per_page"`        // feed caps this at 100
}

// CacheConfig selects and bounds the cache collaborator.
type CacheConfig struct {
	Backend          string      `mapstructure:"backend"` // memory | redis
	MaxEntries       int         `mapstructure:"max_entries"`
	MaxMemoryMB      int         `mapstructure:"max_memory_mb"`
	DefaultTTL       int         `mapstructure:"default_ttl"`        // milliseconds
	RequestScopedTTL int         `mapstructure:"request_scoped_ttl"` // milliseconds, fixed 5m by default
	Redis            RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SearchConfig carries the empirically tuned discovery constants. The values
// are magic numbers inherited from production tuning; treat them as tunable.
type SearchConfig struct {
	WeeksAheadDefault  int     `mapstructure:"weeks_ahead_default"`
	DirectRadiusMiles  float64 `mapstructure:"direct_radius_miles"`
	BroadRadiusMiles   float64 `mapstructure:"broad_radius_miles"`
	BroadWindowDays    int     `mapstructure:"broad_window_days"`
	MaxBroadLocations  int     `mapstructure:"max_broad_locations"`
	SuggestLimit       int     `mapstructure:"suggest_limit"`
	FuzzyAcceptScore   int     `mapstructure:"fuzzy_accept_score"`
	FuzzyGenericScore  int     `mapstructure:"fuzzy_generic_score"`
	FuzzyMinTokenChars int     `mapstructure:"fuzzy_min_token_chars"`
}

type TieringConfig struct {
	MaxRecommendations int `mapstructure:"max_recommendations"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
