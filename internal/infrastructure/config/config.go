package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full gateway configuration
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds the HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// ClassifierConfig holds the remote classification service settings. The
// effective base URL is selected once at startup from the environment.
type ClassifierConfig struct {
	Environment    string `mapstructure:"environment"`
	LocalBaseURL   string `mapstructure:"local_base_url"`
	ProdBaseURL    string `mapstructure:"prod_base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// BaseURL returns the environment-selected classifier base URL
func (c *ClassifierConfig) BaseURL() string {
	if strings.EqualFold(c.Environment, "production") {
		return c.ProdBaseURL
	}
	return c.LocalBaseURL
}

// DatabaseConfig holds the optional Postgres settings for persistent history
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// RedisConfig holds the optional Redis settings for settings storage
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig holds the logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults and EMAILCLASSIFIER_-prefixed
// environment variables (EMAILCLASSIFIER_SERVER_PORT, etc.)
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("classifier.environment", "development")
	v.SetDefault("classifier.local_base_url", "http://localhost:5000")
	v.SetDefault("classifier.prod_base_url", "https://email-classifier-api.onrender.com")
	v.SetDefault("classifier.timeout_seconds", 0)

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "emailclassifier")
	v.SetDefault("database.password", "emailclassifier")
	v.SetDefault("database.dbname", "emailclassifier")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix("EMAILCLASSIFIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
