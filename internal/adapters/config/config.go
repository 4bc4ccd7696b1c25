package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config represents application configuration
type Config struct {
	Server    ServerConfig    `envconfig:"SERVER"`
	Database  DatabaseConfig  `envconfig:"DATABASE"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	AI        AIConfig        `envconfig:"AI"`
	Auth      AuthConfig      `envconfig:"AUTH"`
	Telegram  TelegramConfig  `envconfig:"TELEGRAM"`
	Recommend RecommendConfig `envconfig:"RECOMMEND"`
	Snapshot  SnapshotConfig  `envconfig:"SNAPSHOT"`
	Logging   LoggingConfig   `envconfig:"LOGGING"`
	Demo      DemoConfig      `envconfig:"DEMO"`
}

// ServerConfig represents HTTP server parameters
type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

// DatabaseConfig represents database connection parameters
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	Name     string `envconfig:"DB_NAME" default:"teampulse"`
	User     string `envconfig:"DB_USER" default:"teampulse"`
	Password string `envconfig:"DB_PASSWORD" required:"false"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// RedisConfig represents cache connection parameters
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" required:"false"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AIConfig represents the sentiment/content model provider configuration
type AIConfig struct {
	APIKey      string        `envconfig:"AI_API_KEY" required:"false"`
	BaseURL     string        `envconfig:"AI_BASE_URL" default:"https://api.openai.com/v1/chat/completions"`
	Model       string        `envconfig:"AI_MODEL" default:"gpt-4"`
	Timeout     time.Duration `envconfig:"AI_TIMEOUT" default:"30s"`
	MaxMessages int           `envconfig:"AI_MAX_MESSAGES" default:"10"`
}

// AuthConfig represents session verification parameters
type AuthConfig struct {
	JWTSecret string `envconfig:"AUTH_JWT_SECRET" required:"false"`
}

// TelegramConfig represents the optional wellness notifier bot
type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"false"`
	ChatID   int64  `envconfig:"TELEGRAM_CHAT_ID" required:"false"`
}

// RecommendConfig represents recommendation composer parameters
type RecommendConfig struct {
	CacheTTL  time.Duration `envconfig:"RECOMMEND_CACHE_TTL" default:"30m"`
	MaxTracks int           `envconfig:"RECOMMEND_MAX_TRACKS" default:"5"`
}

// SnapshotConfig represents the team sentiment snapshot worker
type SnapshotConfig struct {
	Enabled  bool          `envconfig:"SNAPSHOT_ENABLED" default:"true"`
	Interval time.Duration `envconfig:"SNAPSHOT_INTERVAL" default:"15m"`
	CacheTTL time.Duration `envconfig:"SNAPSHOT_CACHE_TTL" default:"1h"`
	EventTTL time.Duration `envconfig:"SNAPSHOT_EVENT_TTL" default:"5m"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" required:"false"`
}

// DemoConfig selects canned external collaborators instead of live ones
type DemoConfig struct {
	Enabled bool `envconfig:"DEMO_ENABLED" default:"false"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if c.Recommend.MaxTracks <= 0 {
		return fmt.Errorf("recommend max tracks must be positive, got %d", c.Recommend.MaxTracks)
	}

	if c.AI.MaxMessages <= 0 {
		return fmt.Errorf("ai max messages must be positive, got %d", c.AI.MaxMessages)
	}

	// Live mode needs real credentials; demo mode runs entirely on canned
	// collaborators and needs none.
	if !c.IsDemoMode() && c.Auth.JWTSecret == "" {
		return fmt.Errorf("auth jwt secret is required outside demo mode")
	}

	return nil
}

// IsDemoMode reports whether the service should run on canned collaborators.
// Mirrors the deployment convention of treating a missing or placeholder
// model key as a demo deployment.
func (c *Config) IsDemoMode() bool {
	if c.Demo.Enabled {
		return true
	}
	return c.AI.APIKey == "" || strings.Contains(c.AI.APIKey, "demo")
}

// GetDSN returns PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Addr returns the host:port address for the redis client
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NotifierEnabled reports whether the Telegram wellness notifier is configured
func (c *TelegramConfig) NotifierEnabled() bool {
	return c.BotToken != "" && c.ChatID != 0
}
