package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Storage backends for the favorites slot
const (
	BackendBolt  = "bolt"
	BackendRedis = "redis"
	BackendDisk  = "disk"
)

// Config holds all application configuration
type Config struct {
	// TMDB
	TMDBAPIKey       string
	TMDBBaseURL      string
	TMDBImageBaseURL string
	TMDBLanguage     string        // BCP 47 tag, empty to omit the language parameter
	TMDBTimeout      time.Duration // HTTP timeout per request (default: 15s)
	TMDBCacheTTL     time.Duration // Response cache lifetime, 0 disables (default: 5m)

	// Storage
	StorageBackend string // bolt, redis or disk
	RedisURL       string

	// Server
	ServerPort string

	// Scheduler
	HighlightsSchedule string // cron spec for refreshing trending highlights

	// Paths
	DatabaseFile string // $CONFIG_DIR/goflix.db
	DiskDir      string // $CONFIG_DIR/slots

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = v.ReadInConfig()

	v.SetDefault("TMDB_BASE_URL", "https://api.themoviedb.org/3")
	v.SetDefault("TMDB_IMAGE_BASE_URL", "https://image.tmdb.org/t/p")
	v.SetDefault("TMDB_LANGUAGE", "en-US")
	v.SetDefault("TMDB_TIMEOUT", "15s")
	v.SetDefault("TMDB_CACHE_TTL", "5m")
	v.SetDefault("STORAGE_BACKEND", BackendBolt)
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("HIGHLIGHTS_SCHEDULE", "*/30 * * * *")
	v.SetDefault("LOG_LEVEL", "info")

	configDir := v.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "goflix")
	} else {
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config := &Config{
		TMDBAPIKey:       v.GetString("TMDB_API_KEY"),
		TMDBBaseURL:      strings.TrimRight(v.GetString("TMDB_BASE_URL"), "/"),
		TMDBImageBaseURL: strings.TrimRight(v.GetString("TMDB_IMAGE_BASE_URL"), "/"),
		TMDBLanguage:     v.GetString("TMDB_LANGUAGE"),
		TMDBTimeout:      v.GetDuration("TMDB_TIMEOUT"),
		TMDBCacheTTL:     v.GetDuration("TMDB_CACHE_TTL"),

		StorageBackend: strings.ToLower(v.GetString("STORAGE_BACKEND")),
		RedisURL:       v.GetString("REDIS_URL"),

		ServerPort: v.GetString("SERVER_PORT"),

		HighlightsSchedule: v.GetString("HIGHLIGHTS_SCHEDULE"),

		DatabaseFile: filepath.Join(configDir, "goflix.db"),
		DiskDir:      filepath.Join(configDir, "slots"),

		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.TMDBAPIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required")
	}

	if c.TMDBLanguage != "" {
		tag, err := language.Parse(c.TMDBLanguage)
		if err != nil {
			return fmt.Errorf("invalid TMDB_LANGUAGE %q: %w", c.TMDBLanguage, err)
		}
		c.TMDBLanguage = tag.String()
	}

	if c.TMDBTimeout <= 0 {
		return fmt.Errorf("TMDB_TIMEOUT must be positive")
	}
	if c.TMDBCacheTTL < 0 {
		return fmt.Errorf("TMDB_CACHE_TTL must not be negative")
	}

	switch c.StorageBackend {
	case BackendBolt, BackendDisk:
	case BackendRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORAGE_BACKEND is redis")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	return nil
}
