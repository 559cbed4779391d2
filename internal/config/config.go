package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	LogFormat      string
	RandomSource   string
	RateLimitRPS   float64
	RateLimitBurst int
	AllowedOrigin  string
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8000"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:      strings.ToLower(getEnv("LOG_FORMAT", "text")),
		RandomSource:   strings.ToLower(getEnv("RANDOM_SOURCE", "math")),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		AllowedOrigin:  getEnv("CORS_ALLOWED_ORIGIN", "*"),
	}

	if cfg.RandomSource != "math" && cfg.RandomSource != "crypto" {
		slog.Warn("unknown RANDOM_SOURCE, using math", "value", cfg.RandomSource)
		cfg.RandomSource = "math"
	}

	if cfg.Env == "production" && cfg.RandomSource == "math" {
		slog.Warn("RANDOM_SOURCE=math in production; passwords are not cryptographically random")
	}

	return cfg
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}
