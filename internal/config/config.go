package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all staticserve configuration
type Config struct {
	Server     ServerConfig
	Cache      CacheConfig
	Logging    LoggingConfig
	Monitoring MonitoringConfig
}

type ServerConfig struct {
	HTTPPort  string `validate:"required,numeric"`
	StaticDir string `validate:"required"`

	// Compression level for responses (0 disables)
	CompressLevel int `validate:"gte=0,lte=9"`

	// Request timeout for the whole middleware chain
	RequestTimeout time.Duration `validate:"gt=0"`

	// Rate limiting
	RateLimitEnabled bool
	RateLimitRPS     float64 `validate:"gte=0"`
	RateLimitBurst   int     `validate:"gte=0"`
}

type CacheConfig struct {
	// MaxAge is the Cache-Control freshness lifetime
	MaxAge time.Duration `validate:"gte=0"`

	// Extensions lists the file extensions treated as cacheable,
	// e.g. "css,js,svg,webp,woff2,png"
	Extensions []string `validate:"min=0,dive,alphanum"`
}

type LoggingConfig struct {
	Level      string `validate:"oneof=debug info warn error"`
	Format     string `validate:"oneof=json console"`
	OutputPath string
	MaxSizeMB  int  `validate:"gte=0"`
	MaxBackups int  `validate:"gte=0"`
	MaxAgeDays int  `validate:"gte=0"`
	Compress   bool
}

type MonitoringConfig struct {
	Enabled        bool
	PrometheusPort string `validate:"numeric"`
}

// Load reads environment variables and returns populated Config.
// It will load from .env file if present, but env vars take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			HTTPPort:  getEnv("HTTP_PORT", "8080"),
			StaticDir: getEnv("STATIC_DIR", "./static"),

			CompressLevel:  getEnvAsInt("COMPRESS_LEVEL", 5),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", 60*time.Second),

			RateLimitEnabled: getEnvAsBool("RATE_LIMIT_ENABLED", true),
			RateLimitRPS:     getEnvAsFloat("RATE_LIMIT_RPS", 50.0),
			RateLimitBurst:   getEnvAsInt("RATE_LIMIT_BURST", 100),
		},
		Cache: CacheConfig{
			MaxAge:     getEnvAsDuration("CACHE_MAX_AGE", 365*24*time.Hour),
			Extensions: getEnvAsSlice("CACHE_EXTENSIONS", []string{"css", "js", "svg", "webp", "woff2", "png"}),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			OutputPath: getEnv("LOG_OUTPUT_PATH", "stdout"),
			MaxSizeMB:  getEnvAsInt("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvAsInt("LOG_MAX_AGE_DAYS", 28),
			Compress:   getEnvAsBool("LOG_COMPRESS", true),
		},
		Monitoring: MonitoringConfig{
			Enabled:        getEnvAsBool("METRICS_ENABLED", true),
			PrometheusPort: getEnv("PROMETHEUS_PORT", "9090"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// MustLoad loads config or panics - useful for main.go
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load configuration: %v", err))
	}
	return cfg
}

// Validate checks that all required configuration is present and valid
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// ServerPort returns the HTTP port as an integer
func (c *Config) ServerPort() int {
	port, _ := strconv.Atoi(c.Server.HTTPPort)
	return port
}

// MetricsPort returns the Prometheus port as an integer
func (c *Config) MetricsPort() int {
	port, _ := strconv.Atoi(c.Monitoring.PrometheusPort)
	return port
}

// getEnv retrieves environment variable or returns default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves environment variable as int or returns default
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsBool retrieves environment variable as bool or returns default
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsFloat retrieves environment variable as float64 or returns default
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsDuration retrieves environment variable as duration or returns default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsSlice retrieves environment variable as string slice (comma-separated) or returns default
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	values := []string{}
	for _, v := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			values = append(values, trimmed)
		}
	}

	if len(values) == 0 {
		return defaultValue
	}

	return values
}
