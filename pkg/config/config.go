package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CATALOG"

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Gateway   GatewayConfig
	Cache     CacheConfig
	Redis     RedisConfig
	Server    ServerConfig
	Auth      AuthConfig
	Media     MediaConfig
	Comments  CommentsConfig
	Prefs     PrefsConfig
	Logging   LoggingConfig
	Telemetry TelemetryConfig
}

// DatabaseConfig holds the store database configuration
type DatabaseConfig struct {
	URL string
}

// GatewayConfig holds the remote store endpoint used by clients
type GatewayConfig struct {
	URL        string
	Token      string
	Timeout    time.Duration
	MaxRetries int
	RateLimit  float64 // requests per second, 0 disables pacing
	Burst      int
}

// CacheConfig holds query cache configuration
type CacheConfig struct {
	FetchTimeout time.Duration
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL     string
	Enabled bool
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port        int
	Host        string
	CORSOrigins []string
	RateLimit   float64
	Burst       int
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// MediaConfig holds upload limits
type MediaConfig struct {
	MaxBytes    int64
	Placeholder string
}

// CommentsConfig selects how comment authors are recorded
type CommentsConfig struct {
	AuthorMode string // "name" or "identity"
}

// PrefsConfig holds local preference storage configuration
type PrefsConfig struct {
	Path string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level        string
	Format       string // "json" or "text"
	ScalyrFormat bool   // Enable Scalyr-compatible JSON format
}

// TelemetryConfig holds observability configuration
type TelemetryConfig struct {
	Enabled           bool
	JaegerURL         string
	PrometheusEnabled bool
	ServiceName       string
}

// Load loads configuration from .env, environment variables and config file
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.catalog")
	viper.AddConfigPath("/etc/catalog")

	if err := viper.ReadInConfig(); err != nil {
		// Config file not found; this is OK if we have env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	redisURL := getString("redis_url", "")
	cfg := &Config{
		Database: DatabaseConfig{
			URL: getString("database_url", "sqlite://catalog.db"),
		},
		Gateway: GatewayConfig{
			URL:        getString("gateway_url", "http://localhost:8080/rpc"),
			Token:      getString("gateway_token", ""),
			Timeout:    getDuration("gateway_timeout", 15*time.Second),
			MaxRetries: getInt("gateway_max_retries", 3),
			RateLimit:  getFloat("gateway_rate_limit", 10),
			Burst:      getInt("gateway_burst", 5),
		},
		Cache: CacheConfig{
			FetchTimeout: getDuration("cache_fetch_timeout", 30*time.Second),
		},
		Redis: RedisConfig{
			URL:     redisURL,
			Enabled: redisURL != "",
		},
		Server: ServerConfig{
			Port:        getInt("http_server_port", 8080),
			Host:        getString("http_server_host", "0.0.0.0"),
			CORSOrigins: splitList(getString("cors_origins", "*")),
			RateLimit:   getFloat("server_rate_limit", 20),
			Burst:       getInt("server_burst", 40),
		},
		Auth: AuthConfig{
			JWTSecret: getString("jwt_secret", ""),
			TokenTTL:  getDuration("token_ttl", 24*time.Hour),
		},
		Media: MediaConfig{
			MaxBytes:    int64(getInt("media_max_bytes", 2*1024*1024)),
			Placeholder: getString("media_placeholder", ""),
		},
		Comments: CommentsConfig{
			AuthorMode: getString("comments_author_mode", "name"),
		},
		Prefs: PrefsConfig{
			Path: getString("prefs_path", defaultPrefsPath()),
		},
		Logging: LoggingConfig{
			Level:        getString("log_level", "INFO"),
			Format:       getString("log_format", "json"),
			ScalyrFormat: getBool("log_scalyr_format", false),
		},
		Telemetry: TelemetryConfig{
			Enabled:           getBool("telemetry_enabled", false),
			JaegerURL:         getString("jaeger_url", "http://localhost:14268/api/traces"),
			PrometheusEnabled: getBool("prometheus_enabled", true),
			ServiceName:       getString("service_name", "catalog"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("database_url", "sqlite://catalog.db")
	viper.SetDefault("gateway_url", "http://localhost:8080/rpc")
	viper.SetDefault("http_server_port", 8080)
	viper.SetDefault("http_server_host", "0.0.0.0")
	viper.SetDefault("log_level", "INFO")
	viper.SetDefault("log_format", "json")
	viper.SetDefault("log_scalyr_format", false)
	viper.SetDefault("comments_author_mode", "name")
	viper.SetDefault("telemetry_enabled", false)
	viper.SetDefault("prometheus_enabled", true)
	viper.SetDefault("service_name", "catalog")
}

func defaultPrefsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "catalog-prefs.yaml"
	}
	return home + "/.catalog/prefs.yaml"
}

func getString(key, defaultValue string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	// Also check environment variable directly
	if val := os.Getenv(envPrefix + "_" + toEnvKey(key)); val != "" {
		return val
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	if val := os.Getenv(envPrefix + "_" + toEnvKey(key)); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultValue
}

func getFloat(key string, defaultValue float64) float64 {
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	if val := os.Getenv(envPrefix + "_" + toEnvKey(key)); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	if val := os.Getenv(envPrefix + "_" + toEnvKey(key)); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if viper.IsSet(key) {
		return viper.GetDuration(key)
	}
	if val := os.Getenv(envPrefix + "_" + toEnvKey(key)); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func toEnvKey(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("database_url is required")
	}
	if c.Gateway.URL == "" {
		return fmt.Errorf("gateway_url is required")
	}
	if c.Gateway.MaxRetries < 0 || c.Gateway.MaxRetries > 10 {
		return fmt.Errorf("gateway_max_retries must be between 0 and 10")
	}
	if c.Gateway.RateLimit < 0 {
		return fmt.Errorf("gateway_rate_limit must not be negative")
	}
	if c.Gateway.RateLimit > 0 && c.Gateway.Burst <= 0 {
		return fmt.Errorf("gateway_burst must be positive when rate limiting")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("http_server_port must be between 1 and 65535")
	}
	if c.Media.MaxBytes <= 0 {
		return fmt.Errorf("media_max_bytes must be positive")
	}
	switch c.Comments.AuthorMode {
	case "name", "identity":
	default:
		return fmt.Errorf("comments_author_mode must be \"name\" or \"identity\", got %q", c.Comments.AuthorMode)
	}
	return nil
}

// GetDuration returns a duration from config key, with default
func GetDuration(key string, defaultValue time.Duration) time.Duration {
	return getDuration(key, defaultValue)
}
