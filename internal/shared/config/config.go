package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	OpenAI OpenAIConfig
	Sheets SheetsConfig
	Cache  CacheConfig
}

type ServerConfig struct {
	Port int
	Env  string
}

type LogConfig struct {
	Level  string
	Format string
}

// OpenAIConfig holds configuration for the model-backed search and
// synthesis calls.
type OpenAIConfig struct {
	APIKey string
	Model  string
	// Timeout applies uniformly to every outbound model call. On expiry the
	// calling stage treats the call as failed and degrades to its fallback.
	Timeout time.Duration
	// RequestsPerSecond paces outbound model calls across the process.
	RequestsPerSecond float64
}

// SheetsConfig holds service-account credentials for the procedure
// spreadsheet. When ClientEmail or PrivateKey is empty the sheet source is
// disabled and resolvers skip straight to their next fallback tier.
type SheetsConfig struct {
	ClientEmail string
	PrivateKey  string
	SheetID     string
	Range       string
}

func (s SheetsConfig) Enabled() bool {
	return s.ClientEmail != "" && s.PrivateKey != "" && s.SheetID != ""
}

type CacheConfig struct {
	// RedisAddr selects the Redis-backed cache when set; empty selects the
	// in-process cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SearchTTL   time.Duration
	FallbackTTL time.Duration
}

func Load() (*Config, error) {
	// Best effort: a missing .env is fine in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("SERVER_PORT", 8080),
			Env:  getEnv("ENV", "development"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		OpenAI: OpenAIConfig{
			APIKey:            getEnv("OPENAI_API_KEY", ""),
			Model:             getEnv("OPENAI_MODEL", "gpt-4-turbo"),
			Timeout:           getEnvDuration("OPENAI_TIMEOUT", 15*time.Second),
			RequestsPerSecond: getEnvFloat("OPENAI_RPS", 5),
		},
		Sheets: SheetsConfig{
			ClientEmail: getEnv("GOOGLE_CLIENT_EMAIL", ""),
			PrivateKey:  normalizePrivateKey(getEnv("GOOGLE_PRIVATE_KEY", "")),
			SheetID:     getEnv("GOOGLE_SHEET_ID", ""),
			Range:       getEnv("GOOGLE_SHEET_RANGE", "Sheet1"),
		},
		Cache: CacheConfig{
			RedisAddr:     getEnv("REDIS_ADDR", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("REDIS_DB", 0),
			SearchTTL:     getEnvDuration("CACHE_SEARCH_TTL", time.Hour),
			FallbackTTL:   getEnvDuration("CACHE_FALLBACK_TTL", 30*time.Minute),
		},
	}

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid SERVER_PORT %d", cfg.Server.Port)
	}

	return cfg, nil
}

// normalizePrivateKey restores newlines in a PEM key passed through an env
// var with literal "\n" sequences.
func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
