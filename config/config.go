package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	// HTTP Server
	Port           string   `toml:"port"`
	Environment    string   `toml:"environment"`
	AllowedOrigins []string `toml:"allowed_origins"`

	// Logging
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Rate limiting. Empty RedisAddr keeps the counters in memory.
	RedisAddr         string        `toml:"redis_addr"`
	RateLimitCapacity int           `toml:"rate_limit_capacity"`
	RateLimitWindow   time.Duration `toml:"rate_limit_window"`

	// Advisor
	GeminiAPIKey string `toml:"gemini_api_key"`
	GeminiModel  string `toml:"gemini_model"`
}

// Default returns the configuration used when neither a file nor the
// environment provide a value.
func Default() *Config {
	return &Config{
		Port:              "8000",
		Environment:       EnvDevelopment,
		LogLevel:          "info",
		LogFormat:         "text",
		RateLimitCapacity: 60,
		RateLimitWindow:   time.Minute,
		GeminiModel:       "gemini-2.0-flash",
	}
}

// Load builds the configuration from defaults, then the optional TOML file
// at path, then a .env file and the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	// .env es opcional
	_ = godotenv.Load()

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.AllowedOrigins = getEnvList("ALLOWED_ORIGINS", cfg.AllowedOrigins)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RateLimitCapacity = getEnvInt("RATE_LIMIT_CAPACITY", cfg.RateLimitCapacity)
	cfg.RateLimitWindow = getEnvDuration("RATE_LIMIT_WINDOW", cfg.RateLimitWindow)
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", cfg.GeminiAPIKey)
	cfg.GeminiModel = getEnv("GEMINI_MODEL", cfg.GeminiModel)

	return cfg, nil
}

// IsProduction reports whether CORS should be restricted to AllowedOrigins.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}

// Validate returns every configuration problem joined into one error.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch strings.ToLower(c.Environment) {
	case EnvDevelopment, EnvProduction:
	default:
		problems = append(problems, fmt.Sprintf("invalid environment '%s': must be one of [%s %s]", c.Environment, EnvDevelopment, EnvProduction))
	}

	if c.IsProduction() && len(c.AllowedOrigins) == 0 {
		problems = append(problems, "ALLOWED_ORIGINS is required in production")
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be 'text' or 'json'", c.LogFormat))
	}

	if c.RateLimitCapacity < 1 {
		problems = append(problems, fmt.Sprintf("invalid rate limit capacity %d: must be positive", c.RateLimitCapacity))
	}
	if c.RateLimitWindow <= 0 {
		problems = append(problems, fmt.Sprintf("invalid rate limit window %s: must be positive", c.RateLimitWindow))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed:\n  - " + strings.Join(problems, "\n  - "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
