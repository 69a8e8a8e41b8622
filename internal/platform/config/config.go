package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cfg holds the loaded application configuration for the whole process.
var Cfg *Config

// Config mirrors the structure of config.yaml.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Leaderboard LeaderboardConfig `mapstructure:"leaderboard"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Address string     `mapstructure:"address"`
	Cors    CorsConfig `mapstructure:"cors"`
}

// CorsConfig holds the CORS whitelist.
type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// DatabaseConfig selects and configures the backing stores.
type DatabaseConfig struct {
	// Driver is "sqlite" or "postgres".
	Driver   string         `mapstructure:"driver"`
	Sqlite   SqliteConfig   `mapstructure:"sqlite"`
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// SqliteConfig configures the default on-disk store.
type SqliteConfig struct {
	Path string `mapstructure:"path"`
}

// PostgresConfig configures the optional PostgreSQL store.
type PostgresConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig configures the leaderboard cache. An empty address disables it.
type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LeaderboardConfig tunes the snapshot refresher.
type LeaderboardConfig struct {
	// RefreshInterval is how often the background refresher rebuilds the
	// snapshot. Zero disables the background loop.
	RefreshInterval time.Duration `mapstructure:"refreshInterval"`
	// CacheTTL bounds the lifetime of the rendered board cache in Redis.
	CacheTTL time.Duration `mapstructure:"cacheTTL"`
}

// LoadConfig locates, reads and parses config.yaml, falling back to defaults
// when no file is present. Environment variables override file values, e.g.
// SERVER_ADDRESS or DATABASE_REDIS_ADDRESS.
func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.cors.allowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.sqlite.path", "octofit.db")
	v.SetDefault("leaderboard.refreshInterval", 5*time.Minute)
	v.SetDefault("leaderboard.cacheTTL", 10*time.Minute)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine; defaults and env vars still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	Cfg = &cfg
	return Cfg, nil
}
