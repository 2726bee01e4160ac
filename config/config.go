package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	// Upstream API
	APIBaseURL     string        `envconfig:"FORTSHOP_API_BASE" default:"https://fortnite-api.com"`
	Language       string        `envconfig:"FORTSHOP_LANGUAGE" default:"en"`
	RequestTimeout time.Duration `envconfig:"FORTSHOP_REQUEST_TIMEOUT" default:"9s"`
	MaxRetries     int           `envconfig:"FORTSHOP_MAX_RETRIES" default:"2"`
	MaxConcurrent  int           `envconfig:"FORTSHOP_MAX_CONCURRENT" default:"5"`

	// Rate limiting
	RatePerSecond float64 `envconfig:"FORTSHOP_RATE_PER_SECOND" default:"2.0"`
	RateBurst     int     `envconfig:"FORTSHOP_RATE_BURST" default:"3"`

	// Response cache
	CacheType     string        `envconfig:"FORTSHOP_CACHE" default:"memory"` // "memory" or "redis"
	CacheTTL      time.Duration `envconfig:"FORTSHOP_CACHE_TTL" default:"5m"`
	RedisHost     string        `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int           `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int           `envconfig:"REDIS_DB" default:"0"`

	// Local state
	DataDir string `envconfig:"FORTSHOP_DATA_DIR" default:""`

	// Notification check
	CheckInterval time.Duration `envconfig:"FORTSHOP_CHECK_INTERVAL" default:"1h"`
	WebhookURL    string        `envconfig:"FORTSHOP_WEBHOOK_URL" default:""`

	// HTTP server (MCP over HTTP and REST mode)
	HTTPPort string `envconfig:"PORT" default:"8080"`
	APIKey   string `envconfig:"FORTSHOP_API_KEY" default:""`
}

// Load reads .env (if present) and the environment.
func Load() (*Config, error) {
	// Auto-load .env file; silently ignored if missing
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// RedisAddr returns the host:port of the configured Redis instance.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// StatePath resolves the path of the persisted state file, defaulting
// to ~/.fortshop/state.json.
func (c *Config) StatePath() (string, error) {
	dir := c.DataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".fortshop")
	}
	return filepath.Join(dir, "state.json"), nil
}
